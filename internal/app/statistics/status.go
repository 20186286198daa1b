package statistics

import "github.com/yigit/coursehub/internal/app/models"

// StatusDistribution tallies enrollments per normalised status.
type StatusDistribution struct {
	Pending      int `json:"pending"`
	Confirmed    int `json:"confirmed"`
	Paid         int `json:"paid"`
	Refused      int `json:"refused"`
	Unrecognized int `json:"unrecognized"`
}

// Total returns the number of enrollments seen, recognised or not.
func (d StatusDistribution) Total() int {
	return d.Pending + d.Confirmed + d.Paid + d.Refused + d.Unrecognized
}

// CountStatuses buckets enrollments by case-insensitive status.
func CountStatuses(enrollments []models.Enrollment) StatusDistribution {
	var d StatusDistribution
	for _, e := range enrollments {
		status, ok := models.ParseEnrollmentStatus(e.Status)
		if !ok {
			d.Unrecognized++
			continue
		}
		switch status {
		case models.StatusPending:
			d.Pending++
		case models.StatusConfirmed:
			d.Confirmed++
		case models.StatusPaid:
			d.Paid++
		case models.StatusRefused:
			d.Refused++
		}
	}
	return d
}
