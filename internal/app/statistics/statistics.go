// Package statistics computes dashboard figures from enrollment-platform records.
// Every function here is pure: callers pass the records and the reference time.
package statistics

import (
	"time"

	"github.com/yigit/coursehub/internal/app/models"
)

// TopCoursesLimit is the number of courses kept in the ranking.
const TopCoursesLimit = 5

// Input is the set of records fetched for one dashboard load.
type Input struct {
	Courses     []models.Course
	Instructors []models.Instructor
	Enrollments []models.Enrollment
	Messages    []models.Message
}

// CourseCount is one entry of the top-courses ranking.
type CourseCount struct {
	CourseID int64  `json:"courseId" example:"1"`
	Title    string `json:"title" example:"Initiation à Go"`
	Count    int    `json:"count" example:"12"`
}

// Summary holds the figures derived from courses, instructors and messages only.
type Summary struct {
	TotalCourses      int `json:"totalCourses"`
	TotalInstructors  int `json:"totalInstructors"`
	TotalNewMessages  int `json:"totalNewMessages"`
	ActiveInstructors int `json:"activeInstructors"`
}

// Statistics is the full dashboard aggregation result.
type Statistics struct {
	Summary

	TotalEnrollments int `json:"totalEnrollments"`
	TotalStudents    int `json:"totalStudents"`

	EnrollmentsThisMonth int `json:"enrollmentsThisMonth"`
	EnrollmentsThisYear  int `json:"enrollmentsThisYear"`

	PendingEnrollments      int `json:"pendingEnrollments"`
	ConfirmedEnrollments    int `json:"confirmedEnrollments"`
	RefusedEnrollments      int `json:"refusedEnrollments"`
	UnrecognizedEnrollments int `json:"unrecognizedEnrollments"`

	TopCourses []CourseCount `json:"topCourses"`

	MonthlyLabels       []string `json:"monthlyLabels"`
	MonthlyEnrollments  []int    `json:"monthlyEnrollmentsData"`
	HasEnrollmentsTrend bool     `json:"hasEnrollmentsTrend"`
}

// Summarize computes the figures that do not depend on enrollments.
func Summarize(courses []models.Course, instructors []models.Instructor, messages []models.Message) Summary {
	return Summary{
		TotalCourses:      len(courses),
		TotalInstructors:  len(instructors),
		TotalNewMessages:  NewMessages(messages),
		ActiveInstructors: ActiveInstructors(courses),
	}
}

// Aggregate computes every dashboard figure relative to now.
func Aggregate(in Input, now time.Time) Statistics {
	st := Statistics{
		Summary:          Summarize(in.Courses, in.Instructors, in.Messages),
		TotalEnrollments: len(in.Enrollments),
		TotalStudents:    DistinctStudents(in.Enrollments),
	}

	st.EnrollmentsThisMonth, st.EnrollmentsThisYear = Windows(in.Enrollments, now)

	dist := CountStatuses(in.Enrollments)
	st.PendingEnrollments = dist.Pending
	st.ConfirmedEnrollments = dist.Confirmed + dist.Paid
	st.RefusedEnrollments = dist.Refused
	st.UnrecognizedEnrollments = dist.Unrecognized

	st.TopCourses = TopCourses(in.Courses, in.Enrollments, TopCoursesLimit)

	trend := MonthlyTrend(in.Enrollments, now)
	st.MonthlyLabels = trend.Labels
	st.MonthlyEnrollments = trend.Counts
	st.HasEnrollmentsTrend = trend.HasActivity()

	return st
}

// NewMessages counts unread messages. When none is unread the total message
// count is returned instead, which also covers backends without read tracking.
func NewMessages(messages []models.Message) int {
	unread := 0
	for _, m := range messages {
		if m.IsUnread() {
			unread++
		}
	}
	if unread == 0 {
		return len(messages)
	}
	return unread
}

// ActiveInstructors counts distinct instructors referenced by at least one course.
func ActiveInstructors(courses []models.Course) int {
	ids := make(map[int64]struct{})
	for _, c := range courses {
		if c.InstructorID != nil {
			ids[*c.InstructorID] = struct{}{}
		}
	}
	return len(ids)
}

// DistinctStudents counts distinct student references across enrollments.
func DistinctStudents(enrollments []models.Enrollment) int {
	ids := make(map[int64]struct{}, len(enrollments))
	for _, e := range enrollments {
		ids[e.StudentID] = struct{}{}
	}
	return len(ids)
}

// Windows returns the enrollments created since the start of now's month and
// since the start of now's year.
func Windows(enrollments []models.Enrollment, now time.Time) (thisMonth, thisYear int) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	for _, e := range enrollments {
		ts := e.Timestamp()
		if !ts.Before(monthStart) {
			thisMonth++
		}
		if !ts.Before(yearStart) {
			thisYear++
		}
	}
	return thisMonth, thisYear
}
