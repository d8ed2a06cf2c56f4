package dbmodels

type RewardMilestone struct {
	BaseTenantModel
	Name          string `gorm:"type:varchar(255)"`
	RequiredYears int
	Description   string
	IsActive      bool
}
