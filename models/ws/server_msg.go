package wsmodels

// ServerMessage событие по дисциплинарному делу, рассылается
// подключённым пользователям подразделения
type ServerMessage struct {
	ToTenantID string `json:"-"`
	Time       string `json:"time"`   // время события
	Code       string `json:"code"`   // код события
	Number     string `json:"number"` // номер дела
	Msg        string `json:"msg"`    // текст события
}
