package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yigit/coursehub/internal/app/models/dto"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the admin dashboard statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := NewClient()
		if err != nil {
			return err
		}
		dash, warning, err := client.Dashboard(cmd.Context())
		if err != nil {
			return err
		}
		if warning != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", warning)
		}
		printDashboard(cmd.OutOrStdout(), dash)
		return nil
	},
}

func printDashboard(out io.Writer, dash *dto.DashboardResponse) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	summary := dash.Summary
	if dash.Statistics != nil {
		summary = &dash.Statistics.Summary
	}
	if summary != nil {
		fmt.Fprintf(w, "Courses\t%d\n", summary.TotalCourses)
		fmt.Fprintf(w, "Instructors\t%d (active %d)\n", summary.TotalInstructors, summary.ActiveInstructors)
		fmt.Fprintf(w, "New messages\t%d\n", summary.TotalNewMessages)
	}

	s := dash.Statistics
	if s == nil {
		return
	}
	fmt.Fprintf(w, "Enrollments\t%d (this month %d, this year %d)\n", s.TotalEnrollments, s.EnrollmentsThisMonth, s.EnrollmentsThisYear)
	fmt.Fprintf(w, "Students\t%d\n", s.TotalStudents)
	fmt.Fprintf(w, "Pending / confirmed\t%d / %d\n", s.PendingEnrollments, s.ConfirmedEnrollments)

	fmt.Fprintln(w, "\nTop courses\t")
	for i, c := range s.TopCourses {
		fmt.Fprintf(w, "%d. %s\t%d\n", i+1, c.Title, c.Count)
	}

	if s.HasEnrollmentsTrend {
		fmt.Fprintln(w, "\nTrend\t")
		for i, label := range s.MonthlyLabels {
			fmt.Fprintf(w, "%s\t%d\n", label, s.MonthlyEnrollments[i])
		}
	}
}
