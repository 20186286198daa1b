package statistics

import (
	"reflect"
	"testing"
	"time"

	"github.com/yigit/coursehub/internal/app/models"
)

var refNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func int64Ptr(v int64) *int64 { return &v }

func boolPtr(v bool) *bool { return &v }

func at(t time.Time) *time.Time { return &t }

func TestActiveInstructors(t *testing.T) {
	courses := []models.Course{
		{ID: 1, Title: "Go", InstructorID: int64Ptr(9)},
		{ID: 2, Title: "SQL", InstructorID: int64Ptr(9)},
		{ID: 3, Title: "Docker"},
	}
	if got := ActiveInstructors(courses); got != 1 {
		t.Fatalf("expected 1 active instructor, got %d", got)
	}
}

func TestNewMessages(t *testing.T) {
	cases := []struct {
		name     string
		messages []models.Message
		want     int
	}{
		{"unread counted", []models.Message{{Read: boolPtr(false)}, {Read: boolPtr(false)}, {Read: boolPtr(true)}}, 2},
		{"no read tracking", []models.Message{{}, {}}, 2},
		{"all read falls back to total", []models.Message{{Read: boolPtr(true)}, {Read: boolPtr(true)}}, 2},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		if got := NewMessages(tc.messages); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestCountStatuses(t *testing.T) {
	enrollments := []models.Enrollment{
		{Status: "Pending"},
		{Status: "PAID"},
		{Status: "confirmed"},
		{Status: "bogus"},
	}
	d := CountStatuses(enrollments)
	if d.Pending != 1 || d.Paid != 1 || d.Confirmed != 1 || d.Unrecognized != 1 {
		t.Fatalf("unexpected distribution %+v", d)
	}
	if d.Total() != len(enrollments) {
		t.Fatalf("expected total %d, got %d", len(enrollments), d.Total())
	}

	st := Aggregate(Input{Enrollments: enrollments}, refNow)
	if st.PendingEnrollments != 1 || st.ConfirmedEnrollments != 2 || st.UnrecognizedEnrollments != 1 {
		t.Fatalf("unexpected aggregate status figures %+v", st)
	}
	if st.TotalEnrollments != 4 {
		t.Fatalf("expected 4 enrollments, got %d", st.TotalEnrollments)
	}
}

func TestStatusPartitionCoversAllEnrollments(t *testing.T) {
	statuses := []string{"pending", "REFUSED", "", "Paid", "confirmed", "waiting", "refused", "PENDING"}
	var enrollments []models.Enrollment
	for i := 0; i < 40; i++ {
		enrollments = append(enrollments, models.Enrollment{Status: statuses[i%len(statuses)]})
	}
	st := Aggregate(Input{Enrollments: enrollments}, refNow)
	sum := st.PendingEnrollments + st.ConfirmedEnrollments + st.RefusedEnrollments + st.UnrecognizedEnrollments
	if sum != len(enrollments) {
		t.Fatalf("status partition %d does not cover %d enrollments", sum, len(enrollments))
	}
}

func TestDistinctStudents(t *testing.T) {
	enrollments := []models.Enrollment{{StudentID: 1}, {StudentID: 2}, {StudentID: 1}}
	if got := DistinctStudents(enrollments); got != 2 {
		t.Fatalf("expected 2 students, got %d", got)
	}
}

func TestWindows(t *testing.T) {
	enrollments := []models.Enrollment{
		{CreatedAt: at(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC))},
		{CreatedAt: at(time.Date(2026, time.September, 30, 23, 59, 0, 0, time.UTC))},
		{Date: at(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))},
		{CreatedAt: at(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC))},
		{},
	}
	month, year := Windows(enrollments, refNow)
	if month != 1 {
		t.Fatalf("expected 1 enrollment this month, got %d", month)
	}
	if year != 3 {
		t.Fatalf("expected 3 enrollments this year, got %d", year)
	}
}

func TestEnrollmentTimestampFallback(t *testing.T) {
	created := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	date := time.Date(2026, time.April, 4, 0, 0, 0, 0, time.UTC)

	if ts := (models.Enrollment{CreatedAt: &created, Date: &date}).Timestamp(); !ts.Equal(created) {
		t.Fatalf("expected createdAt, got %s", ts)
	}
	if ts := (models.Enrollment{Date: &date}).Timestamp(); !ts.Equal(date) {
		t.Fatalf("expected date fallback, got %s", ts)
	}
	if ts := (models.Enrollment{}).Timestamp(); ts.Unix() != 0 {
		t.Fatalf("expected epoch fallback, got %s", ts)
	}
}

func TestAggregateScenario(t *testing.T) {
	in := Input{
		Courses: []models.Course{
			{ID: 1, Title: "Go", InstructorID: int64Ptr(7)},
			{ID: 2, Title: "SQL", InstructorID: int64Ptr(7)},
			{ID: 3, Title: "Docker"},
		},
		Instructors: []models.Instructor{{ID: 7}, {ID: 8}},
		Messages:    []models.Message{{Read: boolPtr(true)}, {Read: boolPtr(false)}},
		Enrollments: []models.Enrollment{
			{ID: 1, CourseID: 2, StudentID: 100, Status: "paid", CreatedAt: at(refNow.AddDate(0, 0, -2))},
			{ID: 2, CourseID: 2, StudentID: 101, Status: "pending", CreatedAt: at(refNow.AddDate(0, -1, 0))},
			{ID: 3, CourseID: 1, StudentID: 100, Status: "refused", CreatedAt: at(refNow.AddDate(-1, 0, 0))},
		},
	}

	st := Aggregate(in, refNow)
	if st.TotalCourses != 3 || st.TotalInstructors != 2 || st.ActiveInstructors != 1 {
		t.Fatalf("unexpected summary %+v", st.Summary)
	}
	if st.TotalNewMessages != 1 {
		t.Fatalf("expected 1 new message, got %d", st.TotalNewMessages)
	}
	if st.TotalEnrollments != 3 || st.TotalStudents != 2 {
		t.Fatalf("unexpected totals enrollments=%d students=%d", st.TotalEnrollments, st.TotalStudents)
	}
	if st.EnrollmentsThisMonth != 1 || st.EnrollmentsThisYear != 2 {
		t.Fatalf("unexpected windows month=%d year=%d", st.EnrollmentsThisMonth, st.EnrollmentsThisYear)
	}
	wantTop := []CourseCount{{2, "SQL", 2}, {1, "Go", 1}, {3, "Docker", 0}}
	if !reflect.DeepEqual(st.TopCourses, wantTop) {
		t.Fatalf("unexpected top courses %+v", st.TopCourses)
	}
	if !reflect.DeepEqual(st.MonthlyEnrollments, []int{0, 0, 0, 0, 1, 1}) {
		t.Fatalf("unexpected monthly series %v", st.MonthlyEnrollments)
	}
	if !st.HasEnrollmentsTrend {
		t.Fatalf("expected trend flag to be set")
	}
}
