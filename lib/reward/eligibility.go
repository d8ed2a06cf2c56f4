package rewardprovider

import (
	"math"
	"time"

	"police-hr-backend/models"
	dbmodels "police-hr-backend/models/db"
)

const daysInYear = 365.25

// CalcYearsOfService выслуга лет в долях года на указанную дату
func CalcYearsOfService(effectiveDate, at time.Time) float64 {
	days := at.Sub(effectiveDate).Hours() / 24
	years := days / daysInYear
	return math.Round(years*100) / 100
}

// MilestoneDate календарная дата достижения требуемой выслуги
func MilestoneDate(effectiveDate time.Time, requiredYears int) time.Time {
	return effectiveDate.AddDate(requiredYears, 0, 0)
}

// ClassifyEligibility оценивает право на награду по дисциплинарной
// истории сотрудника. Порядок проверок значим: дисквалификация
// важнее отсрочки, отсрочка важнее дополнительной проверки.
func ClassifyEligibility(complaints []dbmodels.Complaint, at time.Time) (status models.EligibilityStatus, postponedUntil *time.Time) {
	for _, complaint := range complaints {
		if complaint.Article == models.Article31 &&
			complaint.Finding.IsGuilty() &&
			complaint.Status.IsDecided() {
			return models.EligibilityDisqualified, nil
		}
	}
	for _, complaint := range complaints {
		if complaint.Status.IsInProgress() {
			until := at.AddDate(models.PostponementYears, 0, 0)
			return models.EligibilityPostponed, &until
		}
	}
	for _, complaint := range complaints {
		if complaint.Article == models.Article30 &&
			complaint.Finding.IsGuilty() &&
			complaint.Status.IsDecided() {
			return models.EligibilityPending, nil
		}
	}
	return models.EligibilityEligible, nil
}
