package complaintapimodels

import (
	"time"

	"github.com/pkg/errors"

	"police-hr-backend/models"
	dbmodels "police-hr-backend/models/db"
	apimodels "police-hr-backend/models/api"
)

type ComplaintCreateData struct {
	Article      models.ArticleType `json:"article"`
	EmployeeID   string             `json:"employee_id"`
	ReportedByID string             `json:"reported_by_id"`
	OffenseCode  string             `json:"offense_code"`
	OffenseDate  time.Time          `json:"offense_date"`
	Description  string             `json:"description"`
}

func (r ComplaintCreateData) Validate() error {
	if !r.Article.IsValid() {
		return errors.New("не указана статья")
	}
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.OffenseCode == "" {
		return errors.New("не указан код проступка")
	}
	return nil
}

type NotificationData struct {
	NotificationDate time.Time `json:"notification_date"`
	Note             string    `json:"note"`
}

func (r NotificationData) Validate() error {
	if r.NotificationDate.IsZero() {
		return errors.New("не указана дата уведомления")
	}
	return nil
}

type RebuttalData struct {
	RebuttalDate time.Time `json:"rebuttal_date"`
	RebuttalText string    `json:"rebuttal_text"`
}

func (r RebuttalData) Validate() error {
	if r.RebuttalDate.IsZero() {
		return errors.New("не указана дата объяснения")
	}
	if r.RebuttalText == "" {
		return errors.New("не указан текст объяснения")
	}
	return nil
}

type FindingData struct {
	Finding models.Finding `json:"finding"`
	Note    string         `json:"note"`
}

func (r FindingData) Validate() error {
	if r.Finding != models.FindingGuilty && r.Finding != models.FindingNotGuilty {
		return errors.New("недопустимый вердикт")
	}
	return nil
}

type DecisionData struct {
	PunishmentPercent     *float64  `json:"punishment_percent"`
	PunishmentDescription string    `json:"punishment_description"`
	DecisionDate          time.Time `json:"decision_date"`
}

func (r DecisionData) Validate() error {
	if r.DecisionDate.IsZero() {
		return errors.New("не указана дата решения")
	}
	if r.PunishmentDescription == "" {
		return errors.New("не указано описание взыскания")
	}
	if r.PunishmentPercent != nil && (*r.PunishmentPercent < 0 || *r.PunishmentPercent > 100) {
		return errors.New("процент удержания должен быть в диапазоне 0-100")
	}
	return nil
}

type AssignCommitteeData struct {
	CommitteeID string `json:"committee_id"`
}

func (r AssignCommitteeData) Validate() error {
	if r.CommitteeID == "" {
		return errors.New("не указана комиссия")
	}
	return nil
}

type ForwardToHqData struct {
	HqCommitteeID string `json:"hq_committee_id"`
	Note          string `json:"note"`
}

func (r ForwardToHqData) Validate() error {
	if r.HqCommitteeID == "" {
		return errors.New("не указана комиссия центрального аппарата")
	}
	return nil
}

type CloseData struct {
	Note string `json:"note"`
}

type AppealCreateData struct {
	AppealLevel int    `json:"appeal_level"`
	Reason      string `json:"reason"`
}

func (r AppealCreateData) Validate() error {
	if r.AppealLevel < 1 || r.AppealLevel > models.AppealLevelMax {
		return errors.Errorf("уровень обжалования должен быть от 1 до %v", models.AppealLevelMax)
	}
	if r.Reason == "" {
		return errors.New("не указано основание обжалования")
	}
	return nil
}

type AppealDecisionData struct {
	Decision              models.AppealDecision `json:"decision"`
	Reason                string                `json:"reason"`
	ReplacementPunishment string                `json:"replacement_punishment"`
}

func (r AppealDecisionData) Validate() error {
	if !r.Decision.IsValid() {
		return errors.New("недопустимое решение по обжалованию")
	}
	return nil
}

type ComplaintFilter struct {
	apimodels.Pagination
	Status      models.ComplaintStatus `json:"status" query:"status"`
	Article     models.ArticleType     `json:"article" query:"article"`
	EmployeeID  string                 `json:"employee_id" query:"employee_id"`
	OffenseCode string                 `json:"offense_code" query:"offense_code"`
}

func (r ComplaintFilter) Validate() error {
	if r.Article != "" && !r.Article.IsValid() {
		return errors.New("недопустимая статья в фильтре")
	}
	return nil
}

type ComplaintView struct {
	ID                    string                   `json:"id"`
	Number                string                   `json:"number"`
	Article               models.ArticleType       `json:"article"`
	OffenseCode           string                   `json:"offense_code"`
	OffenseDate           time.Time                `json:"offense_date"`
	Description           string                   `json:"description"`
	Status                models.ComplaintStatus   `json:"status"`
	StatusName            string                   `json:"status_name"`
	Finding               models.Finding           `json:"finding"`
	EmployeeID            string                   `json:"employee_id"`
	EmployeeFIO           string                   `json:"employee_fio,omitempty"`
	OffenseOccurrence     int                      `json:"offense_occurrence"`
	SeverityLevel         models.SeverityLevel     `json:"severity_level"`
	DecisionAuthority     models.DecisionAuthority `json:"decision_authority"`
	SuperiorEmployeeID    *string                  `json:"superior_employee_id,omitempty"`
	NotificationDate      *time.Time               `json:"notification_date,omitempty"`
	RebuttalDeadline      *time.Time               `json:"rebuttal_deadline,omitempty"`
	RebuttalDate          *time.Time               `json:"rebuttal_date,omitempty"`
	RebuttalText          string                   `json:"rebuttal_text,omitempty"`
	HasRebuttal           *bool                    `json:"has_rebuttal,omitempty"`
	FindingDate           *time.Time               `json:"finding_date,omitempty"`
	PunishmentPercent     *float64                 `json:"punishment_percent,omitempty"`
	PunishmentDescription string                   `json:"punishment_description,omitempty"`
	DecisionDate          *time.Time               `json:"decision_date,omitempty"`
	CommitteeID           *string                  `json:"committee_id,omitempty"`
	HqCommitteeID         *string                  `json:"hq_committee_id,omitempty"`
	ClosedDate            *time.Time               `json:"closed_date,omitempty"`
	CreatedAt             time.Time                `json:"created_at"`
}

func ComplaintConvert(rec dbmodels.Complaint) ComplaintView {
	view := ComplaintView{
		ID:                    rec.ID,
		Number:                rec.Number,
		Article:               rec.Article,
		OffenseCode:           rec.OffenseCode,
		OffenseDate:           rec.OffenseDate,
		Description:           rec.Description,
		Status:                rec.Status,
		StatusName:            rec.Status.ToHuman(),
		Finding:               rec.Finding,
		EmployeeID:            rec.EmployeeID,
		OffenseOccurrence:     rec.OffenseOccurrence,
		SeverityLevel:         rec.SeverityLevel,
		DecisionAuthority:     rec.DecisionAuthority,
		SuperiorEmployeeID:    rec.SuperiorEmployeeID,
		NotificationDate:      rec.NotificationDate,
		RebuttalDeadline:      rec.RebuttalDeadline,
		RebuttalDate:          rec.RebuttalDate,
		RebuttalText:          rec.RebuttalText,
		HasRebuttal:           rec.HasRebuttal,
		FindingDate:           rec.FindingDate,
		PunishmentPercent:     rec.PunishmentPercent,
		PunishmentDescription: rec.PunishmentDescription,
		DecisionDate:          rec.DecisionDate,
		CommitteeID:           rec.CommitteeID,
		HqCommitteeID:         rec.HqCommitteeID,
		ClosedDate:            rec.ClosedDate,
		CreatedAt:             rec.CreatedAt,
	}
	if rec.Employee != nil {
		view.EmployeeFIO = rec.Employee.GetFIO()
	}
	return view
}

type TimelineView struct {
	ID         string                 `json:"id"`
	Action     models.ComplaintAction `json:"action"`
	FromStatus models.ComplaintStatus `json:"from_status,omitempty"`
	ToStatus   models.ComplaintStatus `json:"to_status,omitempty"`
	UserName   string                 `json:"user_name"`
	Note       string                 `json:"note,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

func TimelineConvert(rec dbmodels.ComplaintTimeline) TimelineView {
	return TimelineView{
		ID:         rec.ID,
		Action:     rec.Action,
		FromStatus: rec.FromStatus,
		ToStatus:   rec.ToStatus,
		UserName:   rec.UserName,
		Note:       rec.Note,
		CreatedAt:  rec.CreatedAt,
	}
}

type AppealView struct {
	ID                    string                `json:"id"`
	ComplaintID           string                `json:"complaint_id"`
	AppealLevel           int                   `json:"appeal_level"`
	Reason                string                `json:"reason"`
	Decision              models.AppealDecision `json:"decision"`
	DecisionReason        string                `json:"decision_reason,omitempty"`
	DecisionDate          *time.Time            `json:"decision_date,omitempty"`
	ReplacementPunishment string                `json:"replacement_punishment,omitempty"`
	CreatedAt             time.Time             `json:"created_at"`
}

func AppealConvert(rec dbmodels.ComplaintAppeal) AppealView {
	return AppealView{
		ID:                    rec.ID,
		ComplaintID:           rec.ComplaintID,
		AppealLevel:           rec.AppealLevel,
		Reason:                rec.Reason,
		Decision:              rec.Decision,
		DecisionReason:        rec.DecisionReason,
		DecisionDate:          rec.DecisionDate,
		ReplacementPunishment: rec.ReplacementPunishment,
		CreatedAt:             rec.CreatedAt,
	}
}

type DocumentView struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

func DocumentConvert(rec dbmodels.ComplaintDocument) DocumentView {
	return DocumentView{
		ID:          rec.ID,
		FileName:    rec.FileName,
		ContentType: rec.ContentType,
		Size:        rec.Size,
		CreatedAt:   rec.CreatedAt,
	}
}
