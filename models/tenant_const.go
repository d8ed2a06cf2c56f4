package models

import "fmt"

// TenantCounterCode код тенантного счётчика, инкрементируется атомарно в БД
type TenantCounterCode string

// ComplaintCounterCode счётчик номеров дел, отдельный на каждый год
func ComplaintCounterCode(year int) TenantCounterCode {
	return TenantCounterCode(fmt.Sprintf("complaint_number_%02d", year%100))
}

// FormatComplaintNumber номер дела в формате CMP-NNNN/YY
func FormatComplaintNumber(seq int64, year int) string {
	return fmt.Sprintf("CMP-%04d/%02d", seq, year%100)
}

type TenantSettingCode string

const (
	TenantSenderEmail  TenantSettingCode = "TenantSenderEmail"  // почта, с которой отправляются уведомления сотрудникам
	TenantReportEmail  TenantSettingCode = "TenantReportEmail"  // почта для отправки отчётов
	TenantDecisionGpt  TenantSettingCode = "TenantDecisionGpt"  // инструкции для генерации проекта решения
	TenantOvertimeRate TenantSettingCode = "TenantOvertimeRate" // коэффициент оплаты сверхурочных
)
