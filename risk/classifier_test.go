package risk

import (
	"testing"
	"time"
)

func TestClassifyNoDate(t *testing.T) {
	got := Classify(nil, time.Now())

	if got.RiskLevel != LevelLow {
		t.Errorf("risk_level = %v, ожидалось %v", got.RiskLevel, LevelLow)
	}
	if got.DaysUntilEOS != nil {
		t.Errorf("days_until_eos = %v, ожидалось nil", *got.DaysUntilEOS)
	}
	if got.Reason != "Subscription-based, continuously updated" {
		t.Errorf("reason = %q", got.Reason)
	}
}

func TestClassifyInvalidDate(t *testing.T) {
	for _, date := range []string{"garbage", "2025-13-40", "14.10.2025", ""} {
		got := Classify(&date, time.Now())

		if got.RiskLevel != LevelUnknown {
			t.Errorf("Classify(%q): risk_level = %v, ожидалось %v", date, got.RiskLevel, LevelUnknown)
		}
		if got.DaysUntilEOS != nil {
			t.Errorf("Classify(%q): days_until_eos не nil", date)
		}
		if got.Reason != "Invalid EOS date format" {
			t.Errorf("Classify(%q): reason = %q", date, got.Reason)
		}
	}
}

func TestClassifyBuckets(t *testing.T) {
	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		offset int
		level  Level
		reason string
	}{
		{"давно прошла", -120, LevelCritical, "Already past EOS by 120 days"},
		{"вчера", -1, LevelCritical, "Already past EOS by 1 days"},
		{"сегодня", 0, LevelHigh, "EOS in 0 days (< 90 days)"},
		{"скоро", 45, LevelHigh, "EOS in 45 days (< 90 days)"},
		{"последний день HIGH", 89, LevelHigh, "EOS in 89 days (< 90 days)"},
		{"граница 90 в мягком бакете", 90, LevelMedium, "EOS in 90 days (90-180 days)"},
		{"середина MEDIUM", 150, LevelMedium, "EOS in 150 days (90-180 days)"},
		{"последний день MEDIUM", 179, LevelMedium, "EOS in 179 days (90-180 days)"},
		{"граница 180 в мягком бакете", 180, LevelLow, "EOS in 180 days (> 180 days)"},
		{"далеко", 1000, LevelLow, "EOS in 1000 days (> 180 days)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eosDate := today.AddDate(0, 0, tt.offset).Format("2006-01-02")
			got := Classify(&eosDate, today)

			if got.RiskLevel != tt.level {
				t.Errorf("risk_level = %v, ожидалось %v", got.RiskLevel, tt.level)
			}
			if got.DaysUntilEOS == nil {
				t.Fatal("days_until_eos = nil")
			}
			if *got.DaysUntilEOS != tt.offset {
				t.Errorf("days_until_eos = %d, ожидалось %d", *got.DaysUntilEOS, tt.offset)
			}
			if got.Reason != tt.reason {
				t.Errorf("reason = %q, ожидалось %q", got.Reason, tt.reason)
			}
		})
	}
}

// Результат не должен зависеть от времени суток "сегодня"
func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	eosDate := "2025-06-01"

	morning := time.Date(2025, 3, 1, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 1, 23, 59, 59, 0, time.UTC)

	gotMorning := Classify(&eosDate, morning)
	gotEvening := Classify(&eosDate, evening)

	if *gotMorning.DaysUntilEOS != *gotEvening.DaysUntilEOS {
		t.Errorf("days_until_eos зависит от времени суток: %d != %d",
			*gotMorning.DaysUntilEOS, *gotEvening.DaysUntilEOS)
	}
	if gotMorning.RiskLevel != gotEvening.RiskLevel {
		t.Errorf("risk_level зависит от времени суток")
	}
}

// Уровень риска монотонно убывает с ростом дней до EOS
func TestClassifySeverityMonotonic(t *testing.T) {
	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	severity := map[Level]int{
		LevelCritical: 3,
		LevelHigh:     2,
		LevelMedium:   1,
		LevelLow:      0,
	}

	prev := severity[LevelCritical]
	for offset := -200; offset <= 200; offset++ {
		eosDate := today.AddDate(0, 0, offset).Format("2006-01-02")
		got := Classify(&eosDate, today)

		current := severity[got.RiskLevel]
		if current > prev {
			t.Fatalf("немонотонность на offset=%d: уровень %v строже предыдущего", offset, got.RiskLevel)
		}
		prev = current
	}
}
