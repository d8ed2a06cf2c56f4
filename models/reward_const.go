package models

// EligibilityStatus результат оценки права на награду за выслугу лет.
// Порядок проверок значим: дисквалификация важнее отсрочки,
// отсрочка важнее дополнительной проверки.
type EligibilityStatus string

const (
	EligibilityEligible     EligibilityStatus = "ELIGIBLE"
	EligibilityPending      EligibilityStatus = "PENDING_REVIEW"
	EligibilityPostponed    EligibilityStatus = "POSTPONED_INVESTIGATION"
	EligibilityDisqualified EligibilityStatus = "DISQUALIFIED_ARTICLE_31"
)

// PostponementYears срок отсрочки при незавершённом расследовании
const PostponementYears = 2
