package rewardapimodels

import (
	"time"

	"github.com/pkg/errors"

	"police-hr-backend/models"
	dbmodels "police-hr-backend/models/db"
)

type MilestoneData struct {
	Name          string `json:"name"`
	RequiredYears int    `json:"required_years"`
	Description   string `json:"description"`
}

func (r MilestoneData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название награды")
	}
	if r.RequiredYears <= 0 {
		return errors.New("выслуга должна быть положительной")
	}
	return nil
}

type MilestoneView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	RequiredYears int    `json:"required_years"`
	Description   string `json:"description,omitempty"`
	IsActive      bool   `json:"is_active"`
}

func MilestoneConvert(rec dbmodels.RewardMilestone) MilestoneView {
	return MilestoneView{
		ID:            rec.ID,
		Name:          rec.Name,
		RequiredYears: rec.RequiredYears,
		Description:   rec.Description,
		IsActive:      rec.IsActive,
	}
}

// EligibilityView результат оценки права сотрудника на награду
type EligibilityView struct {
	EmployeeID               string                   `json:"employee_id"`
	MilestoneID              string                   `json:"milestone_id"`
	EligibilityStatus        models.EligibilityStatus `json:"eligibility_status"`
	CalculatedYearsOfService float64                  `json:"calculated_years_of_service"`
	MilestoneDate            time.Time                `json:"milestone_date"`
	MilestoneReached         bool                     `json:"milestone_reached"`
	PostponedUntil           *time.Time               `json:"postponed_until,omitempty"`
}
