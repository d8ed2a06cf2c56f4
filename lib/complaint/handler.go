package complaintprovider

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"police-hr-backend/db"
	committeestore "police-hr-backend/lib/committee/store"
	complaintappealstore "police-hr-backend/lib/complaint/appeal-store"
	complaintdocumentstore "police-hr-backend/lib/complaint/document-store"
	complaintstore "police-hr-backend/lib/complaint/store"
	complainttimelinestore "police-hr-backend/lib/complaint/timeline-store"
	employeestore "police-hr-backend/lib/employee/store"
	pdfexport "police-hr-backend/lib/export/pdf"
	xlsexport "police-hr-backend/lib/export/xls"
	filestorage "police-hr-backend/lib/file-storage"
	gptprovider "police-hr-backend/lib/gpt"
	"police-hr-backend/lib/smtp"
	tenantcounterstore "police-hr-backend/lib/tenant/counter-store"
	settingsstore "police-hr-backend/lib/tenant/settings-store"
	tenantstore "police-hr-backend/lib/tenant/store"
	initchecker "police-hr-backend/lib/utils/init-checker"
	connectionhub "police-hr-backend/lib/ws/hub/connection-hub"
	"police-hr-backend/models"
	complaintapimodels "police-hr-backend/models/api/complaint"
	dbmodels "police-hr-backend/models/db"
	wsmodels "police-hr-backend/models/ws"
)

type Provider interface {
	Create(tenantID, userID, userName string, request complaintapimodels.ComplaintCreateData) (view complaintapimodels.ComplaintView, err error)
	Get(tenantID, id string) (view complaintapimodels.ComplaintView, err error)
	List(tenantID string, filter complaintapimodels.ComplaintFilter) (list []complaintapimodels.ComplaintView, count int64, err error)
	GetTimeline(tenantID, id string) (list []complaintapimodels.TimelineView, err error)
	RecordNotification(tenantID, id, userID, userName string, request complaintapimodels.NotificationData) (view complaintapimodels.ComplaintView, err error)
	RecordRebuttal(tenantID, id, userID, userName string, request complaintapimodels.RebuttalData) (view complaintapimodels.ComplaintView, err error)
	RebuttalDeadlinePassed(tenantID, id, userID, userName string) (view complaintapimodels.ComplaintView, err error)
	RecordFinding(tenantID, id, userID, userName string, request complaintapimodels.FindingData) (view complaintapimodels.ComplaintView, err error)
	RecordDecision(tenantID, id, userID, userName string, request complaintapimodels.DecisionData) (view complaintapimodels.ComplaintView, err error)
	AssignCommittee(tenantID, id, userID, userName string, request complaintapimodels.AssignCommitteeData) (view complaintapimodels.ComplaintView, err error)
	ForwardToHq(tenantID, id, userID, userName string, request complaintapimodels.ForwardToHqData) (view complaintapimodels.ComplaintView, err error)
	RecordHqDecision(tenantID, id, userID, userName string, request complaintapimodels.DecisionData) (view complaintapimodels.ComplaintView, err error)
	Close(tenantID, id, userID, userName string, request complaintapimodels.CloseData) (view complaintapimodels.ComplaintView, err error)
	SubmitAppeal(tenantID, id, userID, userName string, request complaintapimodels.AppealCreateData) (view complaintapimodels.AppealView, err error)
	DecideAppeal(tenantID, id, appealID, userID, userName string, request complaintapimodels.AppealDecisionData) (view complaintapimodels.AppealView, err error)
	ListAppeals(tenantID, id string) (list []complaintapimodels.AppealView, err error)
	UploadDocument(ctx context.Context, tenantID, id, userID, userName, fileName, contentType string, data []byte) (view complaintapimodels.DocumentView, err error)
	ListDocuments(tenantID, id string) (list []complaintapimodels.DocumentView, err error)
	DownloadDocument(ctx context.Context, tenantID, id, documentID string) (fileName, contentType string, data []byte, err error)
	GenerateDecisionDraft(ctx context.Context, tenantID, id string) (draft string, err error)
	Export(tenantID string, filter complaintapimodels.ComplaintFilter) (*bytes.Buffer, error)
	DecisionOrderPdf(tenantID, id string) (fileName string, data []byte, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          complaintstore.NewInstance(db.DB),
		timelineStore:  complainttimelinestore.NewInstance(db.DB),
		appealStore:    complaintappealstore.NewInstance(db.DB),
		documentStore:  complaintdocumentstore.NewInstance(db.DB),
		employeeStore:  employeestore.NewInstance(db.DB),
		committeeStore: committeestore.NewInstance(db.DB),
		counterStore:   tenantcounterstore.NewInstance(db.DB),
		settingsStore:  settingsstore.NewInstance(db.DB),
		tenantStore:    tenantstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"timelineStore", instance.timelineStore,
		"appealStore", instance.appealStore,
		"documentStore", instance.documentStore,
		"employeeStore", instance.employeeStore,
		"committeeStore", instance.committeeStore,
		"counterStore", instance.counterStore,
		"settingsStore", instance.settingsStore,
		"tenantStore", instance.tenantStore,
	)
	Instance = instance
}

type impl struct {
	store          complaintstore.Provider
	timelineStore  complainttimelinestore.Provider
	appealStore    complaintappealstore.Provider
	documentStore  complaintdocumentstore.Provider
	employeeStore  employeestore.Provider
	committeeStore committeestore.Provider
	counterStore   tenantcounterstore.Provider
	settingsStore  settingsstore.Provider
	tenantStore    tenantstore.Provider
}

func (i impl) Create(tenantID, userID, userName string, request complaintapimodels.ComplaintCreateData) (view complaintapimodels.ComplaintView, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	employee, err := i.employeeStore.GetByID(tenantID, request.EmployeeID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil {
		return view, models.NewBadRequestError("сотрудник не найден")
	}
	if request.ReportedByID != "" {
		reporter, err := i.employeeStore.GetByID(tenantID, request.ReportedByID)
		if err != nil {
			return view, errors.Wrap(err, "ошибка получения заявителя")
		}
		if reporter == nil {
			return view, models.NewBadRequestError("заявитель не найден")
		}
	}
	// руководитель обязателен только для статьи 30, решение за ним
	var superiorID *string
	if request.Article == models.Article30 {
		if employee.SuperiorEmployeeID == nil {
			return view, models.NewBadRequestError("у сотрудника не указан прямой руководитель")
		}
		superiorID = employee.SuperiorEmployeeID
	}

	guiltyCount, err := i.store.CountGuilty(tenantID, request.EmployeeID, request.OffenseCode)
	if err != nil {
		return view, err
	}
	occurrence := int(guiltyCount) + 1

	year := time.Now().Year()
	seq, err := i.counterStore.NextValue(tenantID, models.ComplaintCounterCode(year))
	if err != nil {
		return view, err
	}

	rec := dbmodels.Complaint{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		Number:             models.FormatComplaintNumber(seq, year),
		Article:            request.Article,
		OffenseCode:        request.OffenseCode,
		OffenseDate:        request.OffenseDate,
		Description:        request.Description,
		Status:             request.Article.InitialStatus(),
		Finding:            models.FindingNone,
		EmployeeID:         request.EmployeeID,
		OffenseOccurrence:  occurrence,
		SeverityLevel:      models.ResolveSeverity(request.Article, occurrence),
		DecisionAuthority:  request.Article.DecisionAuthority(),
		SuperiorEmployeeID: superiorID,
	}
	if request.ReportedByID != "" {
		rec.ReportedByID = &request.ReportedByID
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		_, err := complaintstore.NewInstance(tx).Create(rec)
		if err != nil {
			return err
		}
		_, err = complainttimelinestore.NewInstance(tx).Create(i.timelineRec(tenantID, rec.ID, models.ComplaintActionCreated, "", rec.Status, userID, userName, request.Description))
		return err
	})
	if err != nil {
		return view, errors.Wrap(err, "ошибка создания дела")
	}
	logger.
		WithField("complaint_number", rec.Number).
		WithField("rec_id", rec.ID).
		Info("создано дисциплинарное дело")
	i.notify(tenantID, rec.Number, models.ComplaintActionCreated, "создано дисциплинарное дело")
	return i.Get(tenantID, rec.ID)
}

func (i impl) Get(tenantID, id string) (view complaintapimodels.ComplaintView, err error) {
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения дела")
	}
	if rec == nil {
		return view, models.NewNotFoundError("дело не найдено")
	}
	return complaintapimodels.ComplaintConvert(*rec), nil
}

func (i impl) List(tenantID string, filter complaintapimodels.ComplaintFilter) (list []complaintapimodels.ComplaintView, count int64, err error) {
	if err = filter.Validate(); err != nil {
		return nil, 0, models.NewBadRequestError(err.Error())
	}
	count, err = i.store.ListCount(tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(tenantID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка дел")
	}
	list = make([]complaintapimodels.ComplaintView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, complaintapimodels.ComplaintConvert(rec))
	}
	return list, count, nil
}

func (i impl) GetTimeline(tenantID, id string) (list []complaintapimodels.TimelineView, err error) {
	if _, err = i.Get(tenantID, id); err != nil {
		return nil, err
	}
	recList, err := i.timelineStore.List(tenantID, id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения журнала дела")
	}
	list = make([]complaintapimodels.TimelineView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, complaintapimodels.TimelineConvert(rec))
	}
	return list, nil
}

func (i impl) RecordNotification(tenantID, id, userID, userName string, request complaintapimodels.NotificationData) (view complaintapimodels.ComplaintView, err error) {
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	deadline := request.NotificationDate.AddDate(0, 0, models.RebuttalDeadlineDays)
	rec, err := i.applyTransition(tenantID, id, userID, userName, transition{
		action:   models.ComplaintActionNotificationRecorded,
		toStatus: models.ComplaintStatusWaitingForRebuttal,
		note:     request.Note,
		updMap: map[string]interface{}{
			"notification_date": request.NotificationDate,
			"rebuttal_deadline": deadline,
		},
	})
	if err != nil {
		return view, err
	}
	i.sendNotificationEmail(tenantID, rec)
	i.notify(tenantID, rec.Number, models.ComplaintActionNotificationRecorded, "сотрудник уведомлён о проступке")
	return complaintapimodels.ComplaintConvert(*rec), nil
}

func (i impl) RecordRebuttal(tenantID, id, userID, userName string, request complaintapimodels.RebuttalData) (view complaintapimodels.ComplaintView, err error) {
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	hasRebuttal := true
	rec, err := i.applyTransition(tenantID, id, userID, userName, transition{
		action:   models.ComplaintActionRebuttalRecorded,
		toStatus: models.ComplaintStatusUnderHrAnalysis,
		note:     request.RebuttalText,
		updMap: map[string]interface{}{
			"rebuttal_date": request.RebuttalDate,
			"rebuttal_text": request.RebuttalText,
			"has_rebuttal":  &hasRebuttal,
		},
	})
	if err != nil {
		return view, err
	}
	i.notify(tenantID, rec.Number, models.ComplaintActionRebuttalRecorded, "получено объяснение сотрудника")
	return complaintapimodels.ComplaintConvert(*rec), nil
}

func (i impl) RebuttalDeadlinePassed(tenantID, id, userID, userName string) (view complaintapimodels.ComplaintView, err error) {
	rec, err := i.applyTransition(tenantID, id, userID, userName, rebuttalDeadlineTransition())
	if err != nil {
		return view, err
	}
	i.notify(tenantID, rec.Number, models.ComplaintActionRebuttalDeadlinePassed, "истёк срок предоставления объяснения")
	return complaintapimodels.ComplaintConvert(*rec), nil
}

// rebuttalDeadlineTransition отсутствие объяснения в срок — виновность
// без объяснения, дело сразу уходит на решение руководителя
func rebuttalDeadlineTransition() transition {
	hasRebuttal := false
	return transition{
		action:   models.ComplaintActionRebuttalDeadlinePassed,
		toStatus: models.ComplaintStatusAwaitingSuperiorDecision,
		updMap: map[string]interface{}{
			"has_rebuttal": &hasRebuttal,
			"finding":      models.FindingGuiltyNoRebuttal,
		},
	}
}

func (i impl) RecordFinding(tenantID, id, userID, userName string, request complaintapimodels.FindingData) (view complaintapimodels.ComplaintView, err error) {
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	now := time.Now()
	rec, err := i.applyTransition(tenantID, id, userID, userName, transition{
		action: models.ComplaintActionFindingRecorded,
		resolveStatus: func(current dbmodels.Complaint) models.ComplaintStatus {
			return models.FindingOutcome(current.Article, request.Finding)
		},
		note: request.Note,
		updMap: map[string]interface{}{
			"finding":      request.Finding,
			"finding_date": now,
			"finding_note": request.Note,
		},
	})
	if err != nil {
		return view, err
	}
	i.notify(tenantID, rec.Number, models.ComplaintActionFindingRecorded, fmt.Sprintf("зафиксирован вердикт: %v", request.Finding))
	return complaintapimodels.ComplaintConvert(*rec), nil
}

func (i impl) RecordDecision(tenantID, id, userID, userName string, request complaintapimodels.DecisionData) (view complaintapimodels.ComplaintView, err error) {
	return i.recordDecision(tenantID, id, userID, userName, request, models.ComplaintActionDecisionRecorded, models.ComplaintStatusDecided)
}

func (i impl) RecordHqDecision(tenantID, id, userID, userName string, request complaintapimodels.DecisionData) (view complaintapimodels.ComplaintView, err error) {
	return i.recordDecision(tenantID, id, userID, userName, request, models.ComplaintActionHqDecisionRecorded, models.ComplaintStatusDecidedByHq)
}

func (i impl) recordDecision(tenantID, id, userID, userName string, request complaintapimodels.DecisionData, action models.ComplaintAction, toStatus models.ComplaintStatus) (view complaintapimodels.ComplaintView, err error) {
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	rec, err := i.applyTransition(tenantID, id, userID, userName, transition{
		action:   action,
		toStatus: toStatus,
		note:     request.PunishmentDescription,
		updMap: map[string]interface{}{
			"punishment_percent":     request.PunishmentPercent,
			"punishment_description": request.PunishmentDescription,
			"decision_date":          request.DecisionDate,
			"decision_by_id":         userID,
		},
	})
	if err != nil {
		return view, err
	}
	i.notify(tenantID, rec.Number, action, "принято решение по делу")
	return complaintapimodels.ComplaintConvert(*rec), nil
}

func (i impl) AssignCommittee(tenantID, id, userID, userName string, request complaintapimodels.AssignCommitteeData) (view complaintapimodels.ComplaintView, err error) {
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	committee, err := i.committeeStore.GetByID(tenantID, request.CommitteeID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения комиссии")
	}
	if committee == nil {
		return view, models.NewBadRequestError("комиссия не найдена")
	}
	if !committee.IsActive {
		return view, models.NewBadRequestError("комиссия расформирована")
	}
	if committee.IsHeadquarters {
		return view, models.NewBadRequestError("комиссия центрального аппарата назначается при направлении дела")
	}
	rec, err := i.applyTransition(tenantID, id, userID, userName, transition{
		action:   models.ComplaintActionCommitteeAssigned,
		toStatus: models.ComplaintStatusWithCommittee,
		note:     committee.Name,
		updMap: map[string]interface{}{
			"committee_id": request.CommitteeID,
		},
	})
	if err != nil {
		return view, err
	}
	i.notify(tenantID, rec.Number, models.ComplaintActionCommitteeAssigned, "делу назначена комиссия")
	return complaintapimodels.ComplaintConvert(*rec), nil
}

func (i impl) ForwardToHq(tenantID, id, userID, userName string, request complaintapimodels.ForwardToHqData) (view complaintapimodels.ComplaintView, err error) {
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	committee, err := i.committeeStore.GetByID(tenantID, request.HqCommitteeID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения комиссии")
	}
	if committee == nil {
		return view, models.NewBadRequestError("комиссия не найдена")
	}
	if !committee.IsActive {
		return view, models.NewBadRequestError("комиссия расформирована")
	}
	if !committee.IsHeadquarters {
		return view, models.NewBadRequestError("дело направляется только в комиссию центрального аппарата")
	}
	rec, err := i.applyTransition(tenantID, id, userID, userName, transition{
		action:   models.ComplaintActionForwardedToHq,
		toStatus: models.ComplaintStatusForwardedToHq,
		note:     request.Note,
		updMap: map[string]interface{}{
			"hq_committee_id": request.HqCommitteeID,
		},
	})
	if err != nil {
		return view, err
	}
	i.notify(tenantID, rec.Number, models.ComplaintActionForwardedToHq, "дело направлено в центральный аппарат")
	return complaintapimodels.ComplaintConvert(*rec), nil
}

func (i impl) Close(tenantID, id, userID, userName string, request complaintapimodels.CloseData) (view complaintapimodels.ComplaintView, err error) {
	now := time.Now()
	rec, err := i.applyTransition(tenantID, id, userID, userName, transition{
		action: models.ComplaintActionClosed,
		resolveStatus: func(current dbmodels.Complaint) models.ComplaintStatus {
			return models.CloseOutcome(current.Status)
		},
		note: request.Note,
		updMap: map[string]interface{}{
			"closed_date": now,
			"close_note":  request.Note,
		},
	})
	if err != nil {
		return view, err
	}
	i.notify(tenantID, rec.Number, models.ComplaintActionClosed, "дело закрыто")
	return complaintapimodels.ComplaintConvert(*rec), nil
}

func (i impl) SubmitAppeal(tenantID, id, userID, userName string, request complaintapimodels.AppealCreateData) (view complaintapimodels.AppealView, err error) {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	current, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения дела")
	}
	if current == nil {
		return view, models.NewNotFoundError("дело не найдено")
	}
	if err = models.CheckComplaintTransition(models.ComplaintActionAppealSubmitted, current.Article, current.Status); err != nil {
		return view, err
	}
	appeal := dbmodels.ComplaintAppeal{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		ComplaintID: id,
		AppealLevel: request.AppealLevel,
		Reason:      request.Reason,
		Decision:    models.AppealNotDecided,
	}
	// обжалование не меняет статус самого дела
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		_, err := complaintappealstore.NewInstance(tx).Create(appeal)
		if err != nil {
			return models.NewBadRequestError(err.Error())
		}
		_, err = complainttimelinestore.NewInstance(tx).Create(i.timelineRec(tenantID, id, models.ComplaintActionAppealSubmitted, current.Status, current.Status, userID, userName, request.Reason))
		return err
	})
	if err != nil {
		if models.IsBadRequest(err) {
			return view, err
		}
		return view, errors.Wrap(err, "ошибка подачи обжалования")
	}
	logger.WithField("appeal_level", request.AppealLevel).Info("подано обжалование")
	i.notify(tenantID, current.Number, models.ComplaintActionAppealSubmitted, fmt.Sprintf("подано обжалование %d уровня", request.AppealLevel))
	rec, err := i.appealStore.GetByID(tenantID, id, appeal.ID)
	if err != nil || rec == nil {
		return complaintapimodels.AppealConvert(appeal), nil
	}
	return complaintapimodels.AppealConvert(*rec), nil
}

func (i impl) DecideAppeal(tenantID, id, appealID, userID, userName string, request complaintapimodels.AppealDecisionData) (view complaintapimodels.AppealView, err error) {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	current, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения дела")
	}
	if current == nil {
		return view, models.NewNotFoundError("дело не найдено")
	}
	appeal, err := i.appealStore.GetByID(tenantID, id, appealID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения обжалования")
	}
	if appeal == nil {
		return view, models.NewNotFoundError("обжалование не найдено")
	}
	if appeal.Decision != models.AppealNotDecided {
		return view, models.NewBadRequestError("решение по обжалованию уже принято")
	}
	if request.Decision == models.AppealModified && request.ReplacementPunishment == "" {
		return view, models.NewBadRequestError("не указано заменяющее взыскание")
	}

	// решение по обжалованию фиксируется на самом обжаловании,
	// статус и вердикт дела не меняются
	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		err := complaintappealstore.NewInstance(tx).Update(tenantID, appealID, map[string]interface{}{
			"decision":               request.Decision,
			"decision_reason":        request.Reason,
			"reviewer_id":            userID,
			"decision_date":          now,
			"replacement_punishment": request.ReplacementPunishment,
		})
		if err != nil {
			return err
		}
		_, err = complainttimelinestore.NewInstance(tx).Create(i.timelineRec(tenantID, id, models.ComplaintActionAppealDecided, current.Status, current.Status, userID, userName, request.Reason))
		return err
	})
	if err != nil {
		return view, errors.Wrap(err, "ошибка решения по обжалованию")
	}
	logger.
		WithField("appeal_id", appealID).
		WithField("appeal_decision", string(request.Decision)).
		Info("принято решение по обжалованию")
	i.notify(tenantID, current.Number, models.ComplaintActionAppealDecided, fmt.Sprintf("решение по обжалованию: %v", request.Decision))
	rec, err := i.appealStore.GetByID(tenantID, id, appealID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения обжалования")
	}
	return complaintapimodels.AppealConvert(*rec), nil
}

func (i impl) ListAppeals(tenantID, id string) (list []complaintapimodels.AppealView, err error) {
	if _, err = i.Get(tenantID, id); err != nil {
		return nil, err
	}
	recList, err := i.appealStore.List(tenantID, id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка обжалований")
	}
	list = make([]complaintapimodels.AppealView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, complaintapimodels.AppealConvert(rec))
	}
	return list, nil
}

func (i impl) UploadDocument(ctx context.Context, tenantID, id, userID, userName, fileName, contentType string, data []byte) (view complaintapimodels.DocumentView, err error) {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	if fileName == "" {
		return view, models.NewBadRequestError("не указано имя файла")
	}
	if len(data) == 0 {
		return view, models.NewBadRequestError("пустой файл")
	}
	current, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения дела")
	}
	if current == nil {
		return view, models.NewNotFoundError("дело не найдено")
	}
	rec := dbmodels.ComplaintDocument{
		BaseTenantModel: dbmodels.BaseTenantModel{
			BaseModel: dbmodels.BaseModel{
				ID: uuid.New().String(),
			},
			TenantID: tenantID,
		},
		ComplaintID: id,
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	if userID != "" {
		rec.UploadedBy = &userID
	}
	rec.StorageKey = filestorage.DocumentKey(tenantID, id, rec.ID)
	err = filestorage.Instance.Upload(ctx, rec.StorageKey, contentType, bytes.NewReader(data), rec.Size)
	if err != nil {
		return view, err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		_, err := complaintdocumentstore.NewInstance(tx).Create(rec)
		if err != nil {
			return err
		}
		_, err = complainttimelinestore.NewInstance(tx).Create(i.timelineRec(tenantID, id, models.ComplaintActionDocumentAttached, current.Status, current.Status, userID, userName, fileName))
		return err
	})
	if err != nil {
		return view, errors.Wrap(err, "ошибка сохранения материала дела")
	}
	logger.WithField("file_name", fileName).Info("приложен материал дела")
	return complaintapimodels.DocumentConvert(rec), nil
}

func (i impl) ListDocuments(tenantID, id string) (list []complaintapimodels.DocumentView, err error) {
	if _, err = i.Get(tenantID, id); err != nil {
		return nil, err
	}
	recList, err := i.documentStore.List(tenantID, id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения материалов дела")
	}
	list = make([]complaintapimodels.DocumentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, complaintapimodels.DocumentConvert(rec))
	}
	return list, nil
}

func (i impl) DownloadDocument(ctx context.Context, tenantID, id, documentID string) (fileName, contentType string, data []byte, err error) {
	rec, err := i.documentStore.GetByID(tenantID, id, documentID)
	if err != nil {
		return "", "", nil, errors.Wrap(err, "ошибка получения материала дела")
	}
	if rec == nil {
		return "", "", nil, models.NewNotFoundError("материал дела не найден")
	}
	data, err = filestorage.Instance.Download(ctx, rec.StorageKey)
	if err != nil {
		return "", "", nil, err
	}
	return rec.FileName, rec.ContentType, data, nil
}

func (i impl) GenerateDecisionDraft(ctx context.Context, tenantID, id string) (draft string, err error) {
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения дела")
	}
	if rec == nil {
		return "", models.NewNotFoundError("дело не найдено")
	}
	employeeFIO := ""
	if rec.Employee != nil {
		employeeFIO = rec.Employee.GetFIO()
	}
	caseText := fmt.Sprintf("Дело %s. Сотрудник: %s. Статья: %s, код проступка: %s, повторность: %d, тяжесть: %s.\nОписание: %s",
		rec.Number, employeeFIO, rec.Article, rec.OffenseCode, rec.OffenseOccurrence, rec.SeverityLevel, rec.Description)
	if rec.RebuttalText != "" {
		caseText += "\nОбъяснение сотрудника: " + rec.RebuttalText
	}
	if rec.FindingNote != "" {
		caseText += "\nЗаключение: " + rec.FindingNote
	}
	return gptprovider.Instance.GenerateDecisionDraft(ctx, tenantID, caseText)
}

func (i impl) Export(tenantID string, filter complaintapimodels.ComplaintFilter) (*bytes.Buffer, error) {
	if err := filter.Validate(); err != nil {
		return nil, models.NewBadRequestError(err.Error())
	}
	recList, err := i.store.ListForExport(tenantID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка дел")
	}
	return xlsexport.Instance.ExportComplaintList(recList)
}

func (i impl) DecisionOrderPdf(tenantID, id string) (fileName string, data []byte, err error) {
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка получения дела")
	}
	if rec == nil {
		return "", nil, models.NewNotFoundError("дело не найдено")
	}
	if !rec.Status.IsDecided() {
		return "", nil, models.NewBadRequestError("по делу ещё не принято решение")
	}
	tenantName := ""
	tenant, err := i.tenantStore.GetByID(tenantID)
	if err == nil && tenant != nil {
		tenantName = tenant.Name
	}
	data, err = pdfexport.GenerateDecisionOrder(*rec, tenantName)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("order_%s.pdf", rec.ID), data, nil
}

type transition struct {
	action   models.ComplaintAction
	toStatus models.ComplaintStatus
	// resolveStatus вычисляет целевой статус по текущему состоянию дела,
	// имеет приоритет над toStatus
	resolveStatus func(current dbmodels.Complaint) models.ComplaintStatus
	note          string
	updMap        map[string]interface{}
}

// applyTransition проверка допустимости действия и смена статуса
// с записью в журнал в одной транзакции
func (i impl) applyTransition(tenantID, id, userID, userName string, tr transition) (rec *dbmodels.Complaint, err error) {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id).
		WithField("action", string(tr.action))
	toStatus := tr.toStatus
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := complaintstore.NewInstance(tx)
		current, err := store.GetByID(tenantID, id)
		if err != nil {
			return errors.Wrap(err, "ошибка получения дела")
		}
		if current == nil {
			return models.NewNotFoundError("дело не найдено")
		}
		if err = models.CheckComplaintTransition(tr.action, current.Article, current.Status); err != nil {
			return err
		}
		if tr.resolveStatus != nil {
			toStatus = tr.resolveStatus(*current)
		}
		updMap := map[string]interface{}{
			"status": toStatus,
		}
		for key, value := range tr.updMap {
			updMap[key] = value
		}
		if err = store.Update(tenantID, id, updMap); err != nil {
			return err
		}
		_, err = complainttimelinestore.NewInstance(tx).Create(i.timelineRec(tenantID, id, tr.action, current.Status, toStatus, userID, userName, tr.note))
		return err
	})
	if err != nil {
		if models.IsNotFound(err) || models.IsBadRequest(err) {
			return nil, err
		}
		return nil, errors.Wrap(err, "ошибка изменения дела")
	}
	rec, err = i.store.GetByID(tenantID, id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения дела")
	}
	if rec == nil {
		return nil, models.NewNotFoundError("дело не найдено")
	}
	logger.WithField("to_status", string(toStatus)).Info("изменён статус дела")
	return rec, nil
}

func (i impl) timelineRec(tenantID, complaintID string, action models.ComplaintAction, fromStatus, toStatus models.ComplaintStatus, userID, userName, note string) dbmodels.ComplaintTimeline {
	rec := dbmodels.ComplaintTimeline{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		ComplaintID: complaintID,
		Action:      action,
		FromStatus:  fromStatus,
		ToStatus:    toStatus,
		UserName:    userName,
		Note:        note,
	}
	if rec.UserName == "" {
		rec.UserName = models.SystemUser
	}
	if userID != "" {
		rec.UserID = &userID
	}
	return rec
}

func (i impl) notify(tenantID, number string, action models.ComplaintAction, msg string) {
	if connectionhub.Instance == nil {
		return
	}
	connectionhub.Instance.SendToTenant(wsmodels.ServerMessage{
		ToTenantID: tenantID,
		Time:       time.Now().Format("02.01.2006 15:04:05"),
		Code:       string(action),
		Number:     number,
		Msg:        msg,
	})
}

func (i impl) sendNotificationEmail(tenantID string, rec *dbmodels.Complaint) {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", rec.ID)
	if rec.Employee == nil || rec.Employee.Email == "" {
		return
	}
	sender, err := i.settingsStore.GetValueByCode(tenantID, models.TenantSenderEmail)
	if err != nil {
		logger.WithError(err).Error("ошибка получения почты отправителя")
		return
	}
	if sender == "" {
		logger.Warn("уведомление не отправлено, не настроена почта отправителя")
		return
	}
	deadline := ""
	if rec.RebuttalDeadline != nil {
		deadline = rec.RebuttalDeadline.Format("02.01.2006")
	}
	msg := fmt.Sprintf("По делу %s зафиксирован проступок (код %s). Объяснение необходимо предоставить до %s.",
		rec.Number, rec.OffenseCode, deadline)
	err = smtp.Instance.SendEMail(sender, rec.Employee.Email, msg, fmt.Sprintf("Уведомление по делу %s", rec.Number))
	if err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления сотруднику")
	}
}
