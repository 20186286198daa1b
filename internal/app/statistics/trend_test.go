package statistics

import (
	"reflect"
	"testing"
	"time"

	"github.com/yigit/coursehub/internal/app/models"
)

func TestMonthlyTrendLabels(t *testing.T) {
	trend := MonthlyTrend(nil, refNow)
	want := []string{"mai 2026", "juin 2026", "juil. 2026", "août 2026", "sept. 2026", "oct. 2026"}
	if !reflect.DeepEqual(trend.Labels, want) {
		t.Fatalf("unexpected labels %q", trend.Labels)
	}
	if len(trend.Counts) != TrendMonths {
		t.Fatalf("expected %d counts, got %d", TrendMonths, len(trend.Counts))
	}
	if trend.HasActivity() {
		t.Fatalf("empty trend must not report activity")
	}
}

func TestMonthlyTrendCrossesYearBoundary(t *testing.T) {
	now := time.Date(2027, time.February, 3, 8, 0, 0, 0, time.UTC)
	trend := MonthlyTrend(nil, now)
	want := []string{"sept. 2026", "oct. 2026", "nov. 2026", "déc. 2026", "janv. 2027", "févr. 2027"}
	if !reflect.DeepEqual(trend.Labels, want) {
		t.Fatalf("unexpected labels %q", trend.Labels)
	}
}

func TestMonthlyTrendBucketsAndDropsOutOfWindow(t *testing.T) {
	enrollments := []models.Enrollment{
		{CreatedAt: at(time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC))},
		{CreatedAt: at(time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC))},
		{Date: at(time.Date(2026, time.August, 12, 0, 0, 0, 0, time.UTC))},
		{CreatedAt: at(time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC))},
		{CreatedAt: at(time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC))},
		{CreatedAt: at(time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC))},
		{},
	}
	trend := MonthlyTrend(enrollments, refNow)
	if !reflect.DeepEqual(trend.Counts, []int{1, 0, 0, 1, 0, 2}) {
		t.Fatalf("unexpected counts %v", trend.Counts)
	}
	if !trend.HasActivity() {
		t.Fatalf("expected activity")
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)); got != "déc. 2026" {
		t.Fatalf("unexpected label %q", got)
	}
}
