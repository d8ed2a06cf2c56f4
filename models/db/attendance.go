package dbmodels

import "time"

// AttendanceRecord табель за день, производные поля считаются
// при закрытии записи (clock-out)
type AttendanceRecord struct {
	BaseTenantModel
	EmployeeID    string    `gorm:"type:varchar(36);index:idx_attendance_day"`
	Employee      *Employee `gorm:"foreignKey:EmployeeID"`
	Day           time.Time `gorm:"type:date;index:idx_attendance_day"`
	ClockIn       *time.Time
	ClockOut      *time.Time
	DeviceID      *string `gorm:"type:varchar(36)"`
	WorkedHours   float64
	OvertimeHours float64
	LateMinutes   int
	Note          string
}

type Shift struct {
	BaseTenantModel
	Name      string `gorm:"type:varchar(255)"`
	StartTime string `gorm:"type:varchar(5)"` // ЧЧ:ММ
	EndTime   string `gorm:"type:varchar(5)"`
	IsActive  bool
}

// ShiftAssignment уникальность (tenant_id, employee_id, day)
// обеспечивает индекс в миграции
type ShiftAssignment struct {
	BaseTenantModel
	ShiftID    string    `gorm:"type:varchar(36);index"`
	Shift      *Shift    `gorm:"foreignKey:ShiftID"`
	EmployeeID string    `gorm:"type:varchar(36);index"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID"`
	Day        time.Time `gorm:"type:date"`
}
