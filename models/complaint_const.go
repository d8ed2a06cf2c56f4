package models

import "fmt"

type ComplaintStatus string

const (
	ComplaintStatusUnderHrReview            ComplaintStatus = "UNDER_HR_REVIEW"
	ComplaintStatusWaitingForRebuttal       ComplaintStatus = "WAITING_FOR_REBUTTAL"
	ComplaintStatusUnderHrAnalysis          ComplaintStatus = "UNDER_HR_ANALYSIS"
	ComplaintStatusAwaitingSuperiorDecision ComplaintStatus = "AWAITING_SUPERIOR_DECISION"
	ComplaintStatusDecided                  ComplaintStatus = "DECIDED"
	ComplaintStatusWithCommittee            ComplaintStatus = "WITH_DISCIPLINE_COMMITTEE"
	ComplaintStatusCommitteeWaitingRebuttal ComplaintStatus = "COMMITTEE_WAITING_REBUTTAL"
	ComplaintStatusCommitteeAnalysis        ComplaintStatus = "COMMITTEE_ANALYSIS"
	ComplaintStatusInvestigationComplete    ComplaintStatus = "INVESTIGATION_COMPLETE"
	ComplaintStatusForwardedToHq            ComplaintStatus = "FORWARDED_TO_HQ"
	ComplaintStatusAwaitingHqDecision       ComplaintStatus = "AWAITING_HQ_DECISION"
	ComplaintStatusDecidedByHq              ComplaintStatus = "DECIDED_BY_HQ"
	ComplaintStatusOnAppeal                 ComplaintStatus = "ON_APPEAL"
	ComplaintStatusClosedNoLiability        ComplaintStatus = "CLOSED_NO_LIABILITY"
	ComplaintStatusClosedFinal              ComplaintStatus = "CLOSED_FINAL"
)

var complaintStatusHumanName = map[ComplaintStatus]string{
	ComplaintStatusUnderHrReview:            "На рассмотрении кадровой службы",
	ComplaintStatusWaitingForRebuttal:       "Ожидание объяснения",
	ComplaintStatusUnderHrAnalysis:          "Анализ кадровой службой",
	ComplaintStatusAwaitingSuperiorDecision: "Ожидание решения руководителя",
	ComplaintStatusDecided:                  "Решение принято",
	ComplaintStatusWithCommittee:            "Передано дисциплинарной комиссии",
	ComplaintStatusCommitteeWaitingRebuttal: "Комиссия ожидает объяснение",
	ComplaintStatusCommitteeAnalysis:        "Анализ комиссией",
	ComplaintStatusInvestigationComplete:    "Расследование завершено",
	ComplaintStatusForwardedToHq:            "Направлено в центральный аппарат",
	ComplaintStatusAwaitingHqDecision:       "Ожидание решения центрального аппарата",
	ComplaintStatusDecidedByHq:              "Решение центрального аппарата принято",
	ComplaintStatusOnAppeal:                 "На обжаловании",
	ComplaintStatusClosedNoLiability:        "Закрыто без взыскания",
	ComplaintStatusClosedFinal:              "Закрыто",
}

func (s ComplaintStatus) ToHuman() string {
	if human, exist := complaintStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type ArticleType string

const (
	Article30 ArticleType = "ARTICLE_30" // лёгкий проступок, решение принимает прямой руководитель
	Article31 ArticleType = "ARTICLE_31" // серьёзный проступок, решение принимает комиссия
)

func (a ArticleType) IsValid() bool {
	return a == Article30 || a == Article31
}

// InitialStatus начальный статус дела определяется статьёй
func (a ArticleType) InitialStatus() ComplaintStatus {
	if a == Article31 {
		return ComplaintStatusWithCommittee
	}
	return ComplaintStatusUnderHrReview
}

type Finding string

const (
	FindingNone             Finding = "NONE"
	FindingNotGuilty        Finding = "NOT_GUILTY"
	FindingGuilty           Finding = "GUILTY"
	FindingGuiltyNoRebuttal Finding = "GUILTY_NO_REBUTTAL"
)

func (f Finding) IsGuilty() bool {
	return f == FindingGuilty || f == FindingGuiltyNoRebuttal
}

type SeverityLevel string

const (
	SeverityMinor    SeverityLevel = "MINOR"
	SeverityModerate SeverityLevel = "MODERATE"
	SeveritySerious  SeverityLevel = "SERIOUS"
	SeveritySevere   SeverityLevel = "SEVERE"
)

// ResolveSeverity уровень тяжести по статье и порядковому номеру проступка
func ResolveSeverity(article ArticleType, offenseOccurrence int) SeverityLevel {
	if article == Article31 {
		return SeveritySevere
	}
	switch {
	case offenseOccurrence <= 1:
		return SeverityMinor
	case offenseOccurrence == 2:
		return SeverityModerate
	default:
		return SeveritySerious
	}
}

type DecisionAuthority string

const (
	AuthorityDirectSuperior      DecisionAuthority = "DIRECT_SUPERIOR"
	AuthorityDisciplineCommittee DecisionAuthority = "DISCIPLINE_COMMITTEE"
)

func (a ArticleType) DecisionAuthority() DecisionAuthority {
	if a == Article31 {
		return AuthorityDisciplineCommittee
	}
	return AuthorityDirectSuperior
}

type AppealDecision string

const (
	AppealNotDecided AppealDecision = "NOT_DECIDED"
	AppealUpheld     AppealDecision = "UPHELD"
	AppealModified   AppealDecision = "MODIFIED"
	AppealOverturned AppealDecision = "OVERTURNED"
)

func (d AppealDecision) IsValid() bool {
	return d == AppealUpheld || d == AppealModified || d == AppealOverturned
}

type ComplaintAction string

const (
	ComplaintActionCreated                ComplaintAction = "CREATED"
	ComplaintActionNotificationRecorded   ComplaintAction = "NOTIFICATION_RECORDED"
	ComplaintActionRebuttalRecorded       ComplaintAction = "REBUTTAL_RECORDED"
	ComplaintActionRebuttalDeadlinePassed ComplaintAction = "REBUTTAL_DEADLINE_PASSED"
	ComplaintActionFindingRecorded        ComplaintAction = "FINDING_RECORDED"
	ComplaintActionDecisionRecorded       ComplaintAction = "DECISION_RECORDED"
	ComplaintActionCommitteeAssigned      ComplaintAction = "COMMITTEE_ASSIGNED"
	ComplaintActionForwardedToHq          ComplaintAction = "FORWARDED_TO_HQ"
	ComplaintActionHqDecisionRecorded     ComplaintAction = "HQ_DECISION_RECORDED"
	ComplaintActionClosed                 ComplaintAction = "CLOSED"
	ComplaintActionAppealSubmitted        ComplaintAction = "APPEAL_SUBMITTED"
	ComplaintActionAppealDecided          ComplaintAction = "APPEAL_DECIDED"
	ComplaintActionDocumentAttached       ComplaintAction = "DOCUMENT_ATTACHED"
)

// TransitionRule правило перехода: из каких статусов и для какой статьи
// допустимо действие. Пустой список статусов — допустимо из любого статуса,
// пустая статья — допустимо для обеих статей.
type TransitionRule struct {
	FromStatuses []ComplaintStatus
	Article      ArticleType
}

var complaintTransitions = map[ComplaintAction]TransitionRule{
	ComplaintActionNotificationRecorded: {
		FromStatuses: []ComplaintStatus{ComplaintStatusUnderHrReview},
		Article:      Article30,
	},
	ComplaintActionRebuttalRecorded: {
		FromStatuses: []ComplaintStatus{ComplaintStatusWaitingForRebuttal},
		Article:      Article30,
	},
	ComplaintActionRebuttalDeadlinePassed: {
		FromStatuses: []ComplaintStatus{ComplaintStatusWaitingForRebuttal},
		Article:      Article30,
	},
	ComplaintActionFindingRecorded: {
		FromStatuses: []ComplaintStatus{ComplaintStatusUnderHrAnalysis, ComplaintStatusWithCommittee},
	},
	ComplaintActionDecisionRecorded: {
		FromStatuses: []ComplaintStatus{ComplaintStatusAwaitingSuperiorDecision},
		Article:      Article30,
	},
	// назначение комиссии допустимо из любого статуса
	ComplaintActionCommitteeAssigned: {
		Article: Article31,
	},
	ComplaintActionForwardedToHq: {
		FromStatuses: []ComplaintStatus{ComplaintStatusWithCommittee},
		Article:      Article31,
	},
	ComplaintActionHqDecisionRecorded: {
		FromStatuses: []ComplaintStatus{ComplaintStatusForwardedToHq},
		Article:      Article31,
	},
	ComplaintActionClosed: {
		FromStatuses: []ComplaintStatus{ComplaintStatusDecided, ComplaintStatusDecidedByHq, ComplaintStatusClosedNoLiability},
	},
	ComplaintActionAppealSubmitted: {
		FromStatuses: []ComplaintStatus{ComplaintStatusDecided, ComplaintStatusDecidedByHq},
	},
}

// CheckComplaintTransition единая точка проверки допустимости действия
// над делом в текущем статусе
func CheckComplaintTransition(action ComplaintAction, article ArticleType, status ComplaintStatus) error {
	rule, found := complaintTransitions[action]
	if !found {
		return NewBadRequestError(fmt.Sprintf("неизвестное действие: %v", action))
	}
	if rule.Article != "" && rule.Article != article {
		return NewBadRequestError(fmt.Sprintf("действие %v недопустимо для дел по статье %v", action, article))
	}
	if len(rule.FromStatuses) == 0 {
		return nil
	}
	for _, allowed := range rule.FromStatuses {
		if allowed == status {
			return nil
		}
	}
	return NewBadRequestError(fmt.Sprintf("действие %v недопустимо в статусе %v", action, status.ToHuman()))
}

// FindingOutcome статус дела после фиксации вердикта: оправдание
// закрывает дело без взыскания, виновность передаёт дело на решение
// руководителю (ст. 30) или в центральный аппарат (ст. 31)
func FindingOutcome(article ArticleType, finding Finding) ComplaintStatus {
	if !finding.IsGuilty() {
		return ComplaintStatusClosedNoLiability
	}
	if article == Article31 {
		return ComplaintStatusForwardedToHq
	}
	return ComplaintStatusAwaitingSuperiorDecision
}

// CloseOutcome дело без взыскания при закрытии остаётся в своём статусе
func CloseOutcome(current ComplaintStatus) ComplaintStatus {
	if current == ComplaintStatusClosedNoLiability {
		return current
	}
	return ComplaintStatusClosedFinal
}

// ComplaintDecidedStatuses статусы, в которых по делу принято решение
var ComplaintDecidedStatuses = []ComplaintStatus{
	ComplaintStatusDecided,
	ComplaintStatusDecidedByHq,
	ComplaintStatusClosedFinal,
}

// ComplaintInProgressStatuses статусы незавершённого расследования
var ComplaintInProgressStatuses = []ComplaintStatus{
	ComplaintStatusUnderHrReview,
	ComplaintStatusWaitingForRebuttal,
	ComplaintStatusUnderHrAnalysis,
	ComplaintStatusAwaitingSuperiorDecision,
	ComplaintStatusWithCommittee,
	ComplaintStatusCommitteeWaitingRebuttal,
	ComplaintStatusCommitteeAnalysis,
	ComplaintStatusInvestigationComplete,
	ComplaintStatusForwardedToHq,
	ComplaintStatusAwaitingHqDecision,
	ComplaintStatusOnAppeal,
}

func (s ComplaintStatus) IsDecided() bool {
	for _, status := range ComplaintDecidedStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s ComplaintStatus) IsInProgress() bool {
	for _, status := range ComplaintInProgressStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// GuiltyFindings вердикты, учитываемые при подсчёте повторных проступков
var GuiltyFindings = []Finding{FindingGuilty, FindingGuiltyNoRebuttal}

// RebuttalDeadlineDays срок предоставления объяснения после уведомления
const RebuttalDeadlineDays = 3

// AppealLevelMax максимальный уровень обжалования
const AppealLevelMax = 4
