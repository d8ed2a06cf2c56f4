package complaintprovider

import (
	"testing"

	"github.com/stretchr/testify/require"
	"police-hr-backend/models"
)

func TestRebuttalDeadlineTransition(t *testing.T) {
	t.Run(`deadline passed sets verdict and superior decision check`, func(t *testing.T) {
		tr := rebuttalDeadlineTransition()
		require.Equal(t, models.ComplaintActionRebuttalDeadlinePassed, tr.action)
		require.Equal(t, models.ComplaintStatusAwaitingSuperiorDecision, tr.toStatus)
		require.Equal(t, models.FindingGuiltyNoRebuttal, tr.updMap["finding"])

		hasRebuttal, ok := tr.updMap["has_rebuttal"].(*bool)
		require.Equal(t, true, ok)
		require.Equal(t, false, *hasRebuttal)
	})
}
