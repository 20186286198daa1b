package repositories

import (
	"testing"

	"github.com/yigit/coursehub/internal/app/models"
)

func int64Ptr(v int64) *int64 { return &v }

func TestKeepValidDropsMalformedCourses(t *testing.T) {
	courses := []models.Course{
		{ID: 1, Title: "Go"},
		{ID: 0, Title: "No id"},
		{ID: 2, Title: "  "},
		{ID: 3, Title: "Bad instructor", InstructorID: int64Ptr(0)},
		{ID: 4, Title: "Rust", InstructorID: int64Ptr(9)},
	}

	got := keepValid("course", courses)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("unexpected courses kept: %+v", got)
	}
}

func TestKeepValidDropsEnrollmentsWithoutReferences(t *testing.T) {
	enrollments := []models.Enrollment{
		{ID: 1, CourseID: 1, StudentID: 2, Status: "pending"},
		{ID: 2, CourseID: 0, StudentID: 2},
		{ID: 3, CourseID: 1, StudentID: 0},
		{ID: 4, CourseID: 1, StudentID: 3, Status: "whatever"},
	}

	got := keepValid("enrollment", enrollments)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("unexpected enrollments kept: %+v", got)
	}
}

func TestEnrollmentQueryFiltersByCourse(t *testing.T) {
	r := NewEnrollmentRepository(nil)
	sql, args, err := r.byCourseQuery(42).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	want := "SELECT id, course_id, student_id, status, created_at, enrollment_date FROM enrollments WHERE course_id = $1 ORDER BY id"
	if sql != want {
		t.Fatalf("sql = %q\nwant %q", sql, want)
	}
	if len(args) != 1 || args[0] != int64(42) {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestInstructorsQueryFiltersByRole(t *testing.T) {
	r := NewUserRepository(nil)
	sql, args, err := r.instructorsQuery().ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	want := "SELECT id, first_name, last_name, email, specialty, photo, instagram FROM users WHERE role_type = $1 ORDER BY last_name, first_name"
	if sql != want {
		t.Fatalf("sql = %q\nwant %q", sql, want)
	}
	if len(args) != 1 || args[0] != models.RoleInstructor {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestCourseListQuery(t *testing.T) {
	sql, _, err := NewCourseRepository(nil).listQuery().ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if sql != "SELECT id, title, description, instructor_id, created_at FROM courses ORDER BY id" {
		t.Fatalf("unexpected sql %q", sql)
	}
}
