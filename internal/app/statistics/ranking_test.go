package statistics

import (
	"testing"

	"github.com/yigit/coursehub/internal/app/models"
)

func TestTopCoursesKeepsZeroCountCourses(t *testing.T) {
	courses := []models.Course{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}
	top := TopCourses(courses, nil, TopCoursesLimit)
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	for _, c := range top {
		if c.Count != 0 {
			t.Fatalf("expected zero counts, got %+v", top)
		}
	}
}

func TestTopCoursesLimitAndStableTies(t *testing.T) {
	var courses []models.Course
	for i := int64(1); i <= 8; i++ {
		courses = append(courses, models.Course{ID: i, Title: string(rune('A' + i - 1))})
	}
	enrollments := []models.Enrollment{
		{CourseID: 6}, {CourseID: 6}, {CourseID: 6},
		{CourseID: 3}, {CourseID: 5},
		{CourseID: 99},
	}

	top := TopCourses(courses, enrollments, TopCoursesLimit)
	if len(top) != TopCoursesLimit {
		t.Fatalf("expected %d entries, got %d", TopCoursesLimit, len(top))
	}
	wantIDs := []int64{6, 3, 5, 1, 2}
	for i, id := range wantIDs {
		if top[i].CourseID != id {
			t.Fatalf("position %d: expected course %d, got %d (%+v)", i, id, top[i].CourseID, top)
		}
	}
}

func TestTopCoursesCountsMatchEnrollments(t *testing.T) {
	courses := []models.Course{{ID: 10, Title: "X"}, {ID: 20, Title: "Y"}, {ID: 30, Title: "Z"}}
	enrollments := []models.Enrollment{
		{CourseID: 20}, {CourseID: 30}, {CourseID: 20}, {CourseID: 0}, {CourseID: 30}, {CourseID: 30},
	}
	top := TopCourses(courses, enrollments, TopCoursesLimit)
	if len(top) > len(courses) {
		t.Fatalf("ranking longer than course list")
	}
	for _, entry := range top {
		want := 0
		for _, e := range enrollments {
			if e.CourseID == entry.CourseID {
				want++
			}
		}
		if entry.Count != want {
			t.Fatalf("course %d: expected %d, got %d", entry.CourseID, want, entry.Count)
		}
	}
}

func TestTopCoursesDuplicateIDsKeepFirst(t *testing.T) {
	courses := []models.Course{{ID: 1, Title: "first"}, {ID: 2, Title: "other"}, {ID: 1, Title: "again"}}
	top := TopCourses(courses, []models.Enrollment{{CourseID: 1}}, TopCoursesLimit)
	if len(top) != 2 {
		t.Fatalf("expected duplicates collapsed, got %+v", top)
	}
	if top[0].Title != "first" || top[0].Count != 1 {
		t.Fatalf("unexpected leader %+v", top[0])
	}
}
