package risk

import (
	"fmt"
	"time"
)

// Level уровень риска эксплуатации ПО после окончания поддержки
type Level string

const (
	LevelCritical Level = "CRITICAL"
	LevelHigh     Level = "HIGH"
	LevelMedium   Level = "MEDIUM"
	LevelLow      Level = "LOW"
	LevelUnknown  Level = "UNKNOWN"
)

// Пороги бакетов в днях до EOS. Граничные значения принадлежат более
// мягкому бакету: ровно 90 дней - это MEDIUM, ровно 180 - LOW.
const (
	highThresholdDays   = 90
	mediumThresholdDays = 180
)

// eosDateLayout формат даты EOS в справочнике (ISO)
const eosDateLayout = "2006-01-02"

// Assessment итоговая оценка риска. После создания не изменяется.
type Assessment struct {
	RiskLevel    Level  `json:"risk_level"`
	DaysUntilEOS *int   `json:"days_until_eos"`
	Reason       string `json:"reason"`
}

// Classify вычисляет уровень риска по дате окончания поддержки.
// Чистая функция даты и "сегодня": часы передаются значением, чтобы
// граничные случаи были проверяемы без подмены системного времени.
//
// Отсутствующая дата (nil) - подписочная модель без объявленного конца
// поддержки, риск LOW. Неразбираемая дата - UNKNOWN: неопределенность
// всегда представима как данные, не как ошибка.
func Classify(eosDate *string, today time.Time) Assessment {
	if eosDate == nil {
		return Assessment{
			RiskLevel: LevelLow,
			Reason:    "Subscription-based, continuously updated",
		}
	}

	eos, err := time.ParseInLocation(eosDateLayout, *eosDate, time.UTC)
	if err != nil {
		return Assessment{
			RiskLevel: LevelUnknown,
			Reason:    "Invalid EOS date format",
		}
	}

	// Разница календарных дат: обе стороны приводятся к полуночи UTC,
	// чтобы граница бакета не зависела от времени суток
	daysUntil := int(eos.Sub(dateOnly(today)).Hours() / 24)

	switch {
	case daysUntil < 0:
		return Assessment{
			RiskLevel:    LevelCritical,
			DaysUntilEOS: &daysUntil,
			Reason:       fmt.Sprintf("Already past EOS by %d days", -daysUntil),
		}
	case daysUntil < highThresholdDays:
		return Assessment{
			RiskLevel:    LevelHigh,
			DaysUntilEOS: &daysUntil,
			Reason:       fmt.Sprintf("EOS in %d days (< 90 days)", daysUntil),
		}
	case daysUntil < mediumThresholdDays:
		return Assessment{
			RiskLevel:    LevelMedium,
			DaysUntilEOS: &daysUntil,
			Reason:       fmt.Sprintf("EOS in %d days (90-180 days)", daysUntil),
		}
	default:
		return Assessment{
			RiskLevel:    LevelLow,
			DaysUntilEOS: &daysUntil,
			Reason:       fmt.Sprintf("EOS in %d days (> 180 days)", daysUntil),
		}
	}
}

// dateOnly отбрасывает время суток, оставляя календарную дату в UTC
func dateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
