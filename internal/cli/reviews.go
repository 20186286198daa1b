package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/reviewflow"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

var (
	reviewRating  int
	reviewComment string
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "List or submit reviews",
}

var reviewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reviews, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := NewClient()
		if err != nil {
			return err
		}
		reviews, err := client.Reviews(cmd.Context())
		if err != nil {
			return err
		}
		printReviews(cmd.OutOrStdout(), reviews)
		return nil
	},
}

var reviewsSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a review as the logged-in user",
	Long: `Submit a review. The rating must be between 1 and 5 and the comment
between 10 and 500 characters.

Example:
  coursectl reviews submit --rating 5 --comment "Formation claire et bien rythmée."`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := NewClient()
		if err != nil {
			return err
		}

		form := reviewflow.NewForm(nil)
		form.SelectRating(reviewRating)
		form.SetComment(reviewComment)

		review, err := form.Submit(cmd.Context(), client)
		switch {
		case errors.Is(err, apperrors.ErrValidationFailed):
			return err
		case err != nil:
			fmt.Fprintln(cmd.ErrOrStderr(), form.Notice())
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Review #%d submitted (%s)\n", review.ID, stars(review.Rating))
		return nil
	},
}

func init() {
	reviewsSubmitCmd.Flags().IntVar(&reviewRating, "rating", models.ReviewDefaultRating, "Rating from 1 to 5")
	reviewsSubmitCmd.Flags().StringVar(&reviewComment, "comment", "", "Comment, 10 to 500 characters")
	reviewsSubmitCmd.MarkFlagRequired("comment")

	reviewsCmd.AddCommand(reviewsListCmd)
	reviewsCmd.AddCommand(reviewsSubmitCmd)
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > models.ReviewMaxRating {
		rating = models.ReviewMaxRating
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", models.ReviewMaxRating-rating)
}

func printReviews(out io.Writer, reviews []models.Review) {
	if len(reviews) == 0 {
		fmt.Fprintln(out, "No reviews yet")
		return
	}
	for _, r := range reviews {
		author := r.AuthorName
		if author == "" {
			author = "Anonyme"
		}
		fmt.Fprintf(out, "%s  %s  %s\n  %s\n", stars(r.Rating), author, r.CreatedAt.Format("02/01/2006"), r.Comment)
	}
}
