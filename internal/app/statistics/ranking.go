package statistics

import (
	"sort"

	"github.com/yigit/coursehub/internal/app/models"
)

// TopCourses ranks courses by enrollment count, highest first, and keeps at most limit entries.
// Every course starts at zero so courses without enrollments stay in the pool.
// Equal counts keep the order of courses; a repeated course id keeps its first position.
// Enrollments pointing at an unknown course are ignored.
func TopCourses(courses []models.Course, enrollments []models.Enrollment, limit int) []CourseCount {
	ranking := make([]CourseCount, 0, len(courses))
	index := make(map[int64]int, len(courses))
	for _, c := range courses {
		if _, seen := index[c.ID]; seen {
			continue
		}
		index[c.ID] = len(ranking)
		ranking = append(ranking, CourseCount{CourseID: c.ID, Title: c.Title})
	}

	for _, e := range enrollments {
		if i, ok := index[e.CourseID]; ok {
			ranking[i].Count++
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})

	if limit >= 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}
