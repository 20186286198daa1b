package statistics

import (
	"strconv"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/fr"

	"github.com/yigit/coursehub/internal/app/models"
)

// TrendMonths is the number of calendar months in the enrollment trend.
const TrendMonths = 6

// labelLocale formats bucket labels; the dashboard is French-only.
var labelLocale locales.Translator = fr.New()

// Trend is the per-month enrollment series, oldest month first.
type Trend struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// HasActivity reports whether any month has at least one enrollment.
func (t Trend) HasActivity() bool {
	for _, c := range t.Counts {
		if c > 0 {
			return true
		}
	}
	return false
}

// MonthLabel renders t as a short French "month year" label, e.g. "oct. 2026".
func MonthLabel(t time.Time) string {
	return labelLocale.MonthAbbreviated(t.Month()) + " " + strconv.Itoa(t.Year())
}

// MonthlyTrend buckets enrollments into the TrendMonths calendar months ending at now's month.
// Enrollments outside that window are dropped.
func MonthlyTrend(enrollments []models.Enrollment, now time.Time) Trend {
	trend := Trend{
		Labels: make([]string, 0, TrendMonths),
		Counts: make([]int, TrendMonths),
	}
	slots := make(map[string]int, TrendMonths)

	for i := TrendMonths - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		label := MonthLabel(month)
		slots[label] = len(trend.Labels)
		trend.Labels = append(trend.Labels, label)
	}

	for _, e := range enrollments {
		label := MonthLabel(e.Timestamp().In(now.Location()))
		if slot, ok := slots[label]; ok {
			trend.Counts[slot]++
		}
	}
	return trend
}
