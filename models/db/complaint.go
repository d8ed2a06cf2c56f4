package dbmodels

import (
	"time"

	"police-hr-backend/models"
)

// Complaint дисциплинарное дело. Статья фиксируется при создании и не
// меняется, статус меняется только именованными переходами.
type Complaint struct {
	BaseTenantModel
	Number            string             `gorm:"type:varchar(20);index:idx_complaint_number"`
	Article           models.ArticleType `gorm:"type:varchar(20)"`
	OffenseCode       string             `gorm:"type:varchar(50);index"`
	OffenseDate       time.Time
	Description       string
	Status            models.ComplaintStatus `gorm:"type:varchar(50);index"`
	Finding           models.Finding         `gorm:"type:varchar(30)"`
	EmployeeID        string                 `gorm:"type:varchar(36);index"`
	Employee          *Employee              `gorm:"foreignKey:EmployeeID"`
	ReportedByID      *string                `gorm:"type:varchar(36)"`
	ReportedBy        *Employee              `gorm:"foreignKey:ReportedByID"`
	OffenseOccurrence int
	SeverityLevel     models.SeverityLevel     `gorm:"type:varchar(20)"`
	DecisionAuthority models.DecisionAuthority `gorm:"type:varchar(30)"`

	// руководитель заполняется только при статье 30
	SuperiorEmployeeID *string   `gorm:"type:varchar(36)"`
	Superior           *Employee `gorm:"foreignKey:SuperiorEmployeeID"`

	// уведомление и объяснение
	NotificationDate *time.Time
	RebuttalDeadline *time.Time
	RebuttalDate     *time.Time
	RebuttalText     string
	HasRebuttal      *bool

	FindingDate *time.Time
	FindingNote string

	// решение руководителя либо центрального аппарата
	PunishmentPercent     *float64
	PunishmentDescription string
	DecisionDate          *time.Time
	DecisionByID          *string `gorm:"type:varchar(36)"`

	CommitteeID   *string    `gorm:"type:varchar(36)"`
	Committee     *Committee `gorm:"foreignKey:CommitteeID"`
	HqCommitteeID *string    `gorm:"type:varchar(36)"`
	HqCommittee   *Committee `gorm:"foreignKey:HqCommitteeID"`

	ClosedDate *time.Time
	CloseNote  string

	IsDeleted bool `gorm:"index"`

	Timeline  []ComplaintTimeline `gorm:"foreignKey:ComplaintID"`
	Appeals   []ComplaintAppeal   `gorm:"foreignKey:ComplaintID"`
	Documents []ComplaintDocument `gorm:"foreignKey:ComplaintID"`
}

// ComplaintTimeline журнал действий по делу, записи не изменяются и не
// удаляются, порядок вставки восстанавливает историю
type ComplaintTimeline struct {
	BaseTenantModel
	ComplaintID string                 `gorm:"type:varchar(36);index"`
	Action      models.ComplaintAction `gorm:"type:varchar(50)"`
	FromStatus  models.ComplaintStatus `gorm:"type:varchar(50)"`
	ToStatus    models.ComplaintStatus `gorm:"type:varchar(50)"`
	UserID      *string                `gorm:"type:varchar(36)"`
	UserName    string                 `gorm:"type:varchar(255)"`
	Note        string
}

type ComplaintAppeal struct {
	BaseTenantModel
	ComplaintID           string                `gorm:"type:varchar(36);uniqueIndex:idx_complaint_appeal_level"`
	AppealLevel           int                   `gorm:"uniqueIndex:idx_complaint_appeal_level"`
	Reason                string
	Decision              models.AppealDecision `gorm:"type:varchar(30)"`
	DecisionReason        string
	ReviewerID            *string `gorm:"type:varchar(36)"`
	DecisionDate          *time.Time
	ReplacementPunishment string
}

// ComplaintDocument материалы дела, содержимое хранится в S3
type ComplaintDocument struct {
	BaseTenantModel
	ComplaintID string `gorm:"type:varchar(36);index"`
	FileName    string `gorm:"type:varchar(255)"`
	ContentType string `gorm:"type:varchar(100)"`
	StorageKey  string `gorm:"type:varchar(255)"`
	Size        int64
	UploadedBy  *string `gorm:"type:varchar(36)"`
}
