package rewardprovider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"police-hr-backend/models"
	dbmodels "police-hr-backend/models/db"
)

func TestYearsOfService(t *testing.T) {
	t.Run(`ten years milestone reached check`, func(t *testing.T) {
		effective := time.Date(2015, 1, 15, 0, 0, 0, 0, time.UTC)
		at := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		require.Equal(t, 10.38, CalcYearsOfService(effective, at))

		milestone := MilestoneDate(effective, 10)
		require.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), milestone)
		require.Equal(t, false, at.Before(milestone))
	})

	t.Run(`milestone not yet reached check`, func(t *testing.T) {
		effective := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)
		at := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		milestone := MilestoneDate(effective, 10)
		require.Equal(t, time.Date(2030, 9, 1, 0, 0, 0, 0, time.UTC), milestone)
		require.Equal(t, true, at.Before(milestone))
	})

	t.Run(`rounding to hundredths check`, func(t *testing.T) {
		effective := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		at := effective.AddDate(0, 0, 100)
		require.Equal(t, 0.27, CalcYearsOfService(effective, at))
	})
}

func TestClassifyEligibility(t *testing.T) {
	at := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	complaint := func(article models.ArticleType, finding models.Finding, status models.ComplaintStatus) dbmodels.Complaint {
		return dbmodels.Complaint{Article: article, Finding: finding, Status: status}
	}

	t.Run(`clean history check`, func(t *testing.T) {
		status, until := ClassifyEligibility(nil, at)
		require.Equal(t, models.EligibilityEligible, status)
		require.Nil(t, until)
	})

	t.Run(`not guilty history stays eligible check`, func(t *testing.T) {
		history := []dbmodels.Complaint{
			complaint(models.Article30, models.FindingNotGuilty, models.ComplaintStatusClosedNoLiability),
		}
		status, until := ClassifyEligibility(history, at)
		require.Equal(t, models.EligibilityEligible, status)
		require.Nil(t, until)
	})

	t.Run(`guilty article 31 disqualifies check`, func(t *testing.T) {
		history := []dbmodels.Complaint{
			complaint(models.Article31, models.FindingGuilty, models.ComplaintStatusDecidedByHq),
		}
		status, until := ClassifyEligibility(history, at)
		require.Equal(t, models.EligibilityDisqualified, status)
		require.Nil(t, until)
	})

	t.Run(`open investigation postpones check`, func(t *testing.T) {
		history := []dbmodels.Complaint{
			complaint(models.Article30, models.FindingNone, models.ComplaintStatusWaitingForRebuttal),
		}
		status, until := ClassifyEligibility(history, at)
		require.Equal(t, models.EligibilityPostponed, status)
		require.NotNil(t, until)
		require.Equal(t, at.AddDate(2, 0, 0), *until)
	})

	t.Run(`guilty article 30 needs review check`, func(t *testing.T) {
		history := []dbmodels.Complaint{
			complaint(models.Article30, models.FindingGuiltyNoRebuttal, models.ComplaintStatusClosedFinal),
		}
		status, until := ClassifyEligibility(history, at)
		require.Equal(t, models.EligibilityPending, status)
		require.Nil(t, until)
	})

	t.Run(`disqualification beats postponement check`, func(t *testing.T) {
		history := []dbmodels.Complaint{
			complaint(models.Article30, models.FindingNone, models.ComplaintStatusUnderHrReview),
			complaint(models.Article31, models.FindingGuilty, models.ComplaintStatusClosedFinal),
		}
		status, _ := ClassifyEligibility(history, at)
		require.Equal(t, models.EligibilityDisqualified, status)
	})

	t.Run(`postponement beats pending review check`, func(t *testing.T) {
		history := []dbmodels.Complaint{
			complaint(models.Article30, models.FindingGuilty, models.ComplaintStatusDecided),
			complaint(models.Article31, models.FindingNone, models.ComplaintStatusWithCommittee),
		}
		status, until := ClassifyEligibility(history, at)
		require.Equal(t, models.EligibilityPostponed, status)
		require.NotNil(t, until)
	})
}
