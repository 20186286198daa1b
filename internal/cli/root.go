// Package cli implements coursectl, the command-line client of the CourseHub API.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coursectl",
	Short: "coursectl, command-line client for CourseHub",
	Long: `coursectl talks to a CourseHub server: log in, read the admin
dashboard statistics, and list or submit reviews.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(versionCmd)
}
