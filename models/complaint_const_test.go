package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplaintTransitions(t *testing.T) {
	t.Run(`initial status by article check`, func(t *testing.T) {
		require.Equal(t, ComplaintStatusUnderHrReview, Article30.InitialStatus())
		require.Equal(t, ComplaintStatusWithCommittee, Article31.InitialStatus())
	})

	t.Run(`notification only from under hr review check`, func(t *testing.T) {
		err := CheckComplaintTransition(ComplaintActionNotificationRecorded, Article30, ComplaintStatusUnderHrReview)
		require.Nil(t, err)

		err = CheckComplaintTransition(ComplaintActionNotificationRecorded, Article30, ComplaintStatusWaitingForRebuttal)
		require.NotNil(t, err)

		err = CheckComplaintTransition(ComplaintActionNotificationRecorded, Article31, ComplaintStatusUnderHrReview)
		require.NotNil(t, err)
	})

	t.Run(`rebuttal before notification check`, func(t *testing.T) {
		err := CheckComplaintTransition(ComplaintActionRebuttalRecorded, Article30, ComplaintStatusUnderHrReview)
		require.NotNil(t, err)

		err = CheckComplaintTransition(ComplaintActionRebuttalRecorded, Article30, ComplaintStatusWaitingForRebuttal)
		require.Nil(t, err)
	})

	t.Run(`rebuttal deadline only while waiting check`, func(t *testing.T) {
		err := CheckComplaintTransition(ComplaintActionRebuttalDeadlinePassed, Article30, ComplaintStatusWaitingForRebuttal)
		require.Nil(t, err)

		err = CheckComplaintTransition(ComplaintActionRebuttalDeadlinePassed, Article30, ComplaintStatusUnderHrAnalysis)
		require.NotNil(t, err)
	})

	t.Run(`finding from analysis statuses check`, func(t *testing.T) {
		err := CheckComplaintTransition(ComplaintActionFindingRecorded, Article30, ComplaintStatusUnderHrAnalysis)
		require.Nil(t, err)

		err = CheckComplaintTransition(ComplaintActionFindingRecorded, Article31, ComplaintStatusWithCommittee)
		require.Nil(t, err)

		err = CheckComplaintTransition(ComplaintActionFindingRecorded, Article30, ComplaintStatusUnderHrReview)
		require.NotNil(t, err)
	})

	t.Run(`committee assignment from any status check`, func(t *testing.T) {
		err := CheckComplaintTransition(ComplaintActionCommitteeAssigned, Article31, ComplaintStatusWithCommittee)
		require.Nil(t, err)

		err = CheckComplaintTransition(ComplaintActionCommitteeAssigned, Article31, ComplaintStatusForwardedToHq)
		require.Nil(t, err)

		err = CheckComplaintTransition(ComplaintActionCommitteeAssigned, Article30, ComplaintStatusUnderHrReview)
		require.NotNil(t, err)
	})

	t.Run(`forward to hq only for article 31 check`, func(t *testing.T) {
		err := CheckComplaintTransition(ComplaintActionForwardedToHq, Article31, ComplaintStatusWithCommittee)
		require.Nil(t, err)

		err = CheckComplaintTransition(ComplaintActionForwardedToHq, Article30, ComplaintStatusUnderHrAnalysis)
		require.NotNil(t, err)
	})

	t.Run(`close from decided statuses check`, func(t *testing.T) {
		err := CheckComplaintTransition(ComplaintActionClosed, Article30, ComplaintStatusDecided)
		require.Nil(t, err)

		err = CheckComplaintTransition(ComplaintActionClosed, Article31, ComplaintStatusDecidedByHq)
		require.Nil(t, err)

		err = CheckComplaintTransition(ComplaintActionClosed, Article30, ComplaintStatusClosedNoLiability)
		require.Nil(t, err)

		err = CheckComplaintTransition(ComplaintActionClosed, Article30, ComplaintStatusUnderHrReview)
		require.NotNil(t, err)
	})

	t.Run(`unknown action check`, func(t *testing.T) {
		err := CheckComplaintTransition(ComplaintAction("SOMETHING_ELSE"), Article30, ComplaintStatusUnderHrReview)
		require.NotNil(t, err)
	})
}

func TestComplaintHelpers(t *testing.T) {
	t.Run(`severity by article and occurrence check`, func(t *testing.T) {
		require.Equal(t, SeverityMinor, ResolveSeverity(Article30, 1))
		require.Equal(t, SeverityModerate, ResolveSeverity(Article30, 2))
		require.Equal(t, SeveritySerious, ResolveSeverity(Article30, 3))
		require.Equal(t, SeveritySerious, ResolveSeverity(Article30, 7))
		require.Equal(t, SeveritySevere, ResolveSeverity(Article31, 1))
	})

	t.Run(`decision authority check`, func(t *testing.T) {
		require.Equal(t, AuthorityDirectSuperior, Article30.DecisionAuthority())
		require.Equal(t, AuthorityDisciplineCommittee, Article31.DecisionAuthority())
	})

	t.Run(`guilty finding check`, func(t *testing.T) {
		require.Equal(t, true, FindingGuilty.IsGuilty())
		require.Equal(t, true, FindingGuiltyNoRebuttal.IsGuilty())
		require.Equal(t, false, FindingNotGuilty.IsGuilty())
		require.Equal(t, false, FindingNone.IsGuilty())
	})

	t.Run(`decided and in progress statuses check`, func(t *testing.T) {
		require.Equal(t, true, ComplaintStatusDecided.IsDecided())
		require.Equal(t, true, ComplaintStatusDecidedByHq.IsDecided())
		require.Equal(t, true, ComplaintStatusClosedFinal.IsDecided())
		require.Equal(t, false, ComplaintStatusClosedNoLiability.IsDecided())

		require.Equal(t, true, ComplaintStatusUnderHrReview.IsInProgress())
		require.Equal(t, true, ComplaintStatusOnAppeal.IsInProgress())
		require.Equal(t, false, ComplaintStatusClosedFinal.IsInProgress())
		require.Equal(t, false, ComplaintStatusClosedNoLiability.IsInProgress())
	})
}

func TestComplaintOutcomes(t *testing.T) {
	t.Run(`finding outcome by article check`, func(t *testing.T) {
		require.Equal(t, ComplaintStatusClosedNoLiability, FindingOutcome(Article30, FindingNotGuilty))
		require.Equal(t, ComplaintStatusClosedNoLiability, FindingOutcome(Article31, FindingNotGuilty))
		require.Equal(t, ComplaintStatusAwaitingSuperiorDecision, FindingOutcome(Article30, FindingGuilty))
		require.Equal(t, ComplaintStatusAwaitingSuperiorDecision, FindingOutcome(Article30, FindingGuiltyNoRebuttal))
		require.Equal(t, ComplaintStatusForwardedToHq, FindingOutcome(Article31, FindingGuilty))
	})

	t.Run(`guilty article 31 case continues to hq decision check`, func(t *testing.T) {
		outcome := FindingOutcome(Article31, FindingGuilty)
		err := CheckComplaintTransition(ComplaintActionHqDecisionRecorded, Article31, outcome)
		require.Nil(t, err)
	})

	t.Run(`close outcome check`, func(t *testing.T) {
		require.Equal(t, ComplaintStatusClosedFinal, CloseOutcome(ComplaintStatusDecided))
		require.Equal(t, ComplaintStatusClosedFinal, CloseOutcome(ComplaintStatusDecidedByHq))
		require.Equal(t, ComplaintStatusClosedNoLiability, CloseOutcome(ComplaintStatusClosedNoLiability))
	})
}

func TestComplaintNumber(t *testing.T) {
	t.Run(`number format check`, func(t *testing.T) {
		require.Equal(t, "CMP-0001/26", FormatComplaintNumber(1, 2026))
		require.Equal(t, "CMP-0042/25", FormatComplaintNumber(42, 2025))
		require.Equal(t, "CMP-12345/26", FormatComplaintNumber(12345, 2026))
	})

	t.Run(`counter code per year check`, func(t *testing.T) {
		require.Equal(t, TenantCounterCode("complaint_number_26"), ComplaintCounterCode(2026))
		require.NotEqual(t, ComplaintCounterCode(2025), ComplaintCounterCode(2026))
	})
}
