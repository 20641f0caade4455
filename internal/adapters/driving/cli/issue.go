package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
)

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Read and update tracker issues",
	Long:  `Fetch issues and their comments, move them through the workflow, set flags, and post comments.`,
}

var issueGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show an issue",
	Args:  cobra.ExactArgs(1),
	RunE:  runIssueGet,
}

var issueCommentsCmd = &cobra.Command{
	Use:   "comments [id]",
	Short: "List the comments of an issue",
	Args:  cobra.ExactArgs(1),
	RunE:  runIssueComments,
}

var issueSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for issues",
	Long:  `Searches the tracker for issues matching the given criteria. Searching is not supported by the tracker connector yet and always returns no issues.`,
	Args:  cobra.NoArgs,
	RunE:  runIssueSearch,
}

var issueStatusCmd = &cobra.Command{
	Use:   "status [id] [status]",
	Short: "Set the status of an issue",
	Long: `Moves an issue to a new workflow status.

Available statuses:
  ` + joinStatuses(),
	Args: cobra.ExactArgs(2),
	RunE: runIssueStatus,
}

var issueTargetReleaseCmd = &cobra.Command{
	Use:   "target-release [id] [release...]",
	Short: "Set the target release of an issue",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runIssueTargetRelease,
}

var issueTargetMilestoneCmd = &cobra.Command{
	Use:   "target-milestone [id] [milestone]",
	Short: "Set the target milestone of an issue",
	Args:  cobra.ExactArgs(2),
	RunE:  runIssueTargetMilestone,
}

var issueEstimateCmd = &cobra.Command{
	Use:   "estimate [id] [hours]",
	Short: "Set the estimated time of an issue",
	Args:  cobra.ExactArgs(2),
	RunE:  runIssueEstimate,
}

var issueFlagCmd = &cobra.Command{
	Use:   "flag [name] [status] [id...]",
	Short: "Set a flag on one or more issues",
	Long: `Sets a flag on every listed issue with a single tracker call.

Status is a symbol or a name:
  +  accepted
  -  rejected
  ?  set
     unset`,
	Args: cobra.MinimumNArgs(3),
	RunE: runIssueFlag,
}

var issueCommentCmd = &cobra.Command{
	Use:   "comment [id] [text]",
	Short: "Post a comment on an issue",
	Args:  cobra.ExactArgs(2),
	RunE:  runIssueComment,
}

// Flags for issue subcommands.
var (
	issueWithComments bool
	issueOutput       string
	commentsOutput    string
	searchOutput      string
	commentPrivate    bool
	searchCriteria    domain.SearchCriteria
	searchStatus      string
)

func init() {
	issueGetCmd.Flags().BoolVarP(&issueWithComments, "comments", "c", false, "include comments")
	issueGetCmd.Flags().StringVarP(&issueOutput, "output", "o", formatText, "output format: text, json or yaml")
	issueCommentsCmd.Flags().StringVarP(&commentsOutput, "output", "o", formatText, "output format: text, json or yaml")

	issueSearchCmd.Flags().StringVar(&searchCriteria.Assignee, "assignee", "", "filter by assignee")
	issueSearchCmd.Flags().StringVar(&searchCriteria.Product, "product", "", "filter by product")
	issueSearchCmd.Flags().StringVar(&searchCriteria.Component, "component", "", "filter by component")
	issueSearchCmd.Flags().StringVar(&searchStatus, "status", "", "filter by status")
	issueSearchCmd.Flags().IntVarP(&searchCriteria.MaxResults, "limit", "n", 0, "maximum number of issues (0 for no limit)")
	issueSearchCmd.Flags().StringVarP(&searchOutput, "output", "o", formatText, "output format: text, json or yaml")

	issueCommentCmd.Flags().BoolVarP(&commentPrivate, "private", "p", false, "restrict the comment to privileged users")

	issueCmd.AddCommand(issueGetCmd)
	issueCmd.AddCommand(issueCommentsCmd)
	issueCmd.AddCommand(issueSearchCmd)
	issueCmd.AddCommand(issueStatusCmd)
	issueCmd.AddCommand(issueTargetReleaseCmd)
	issueCmd.AddCommand(issueTargetMilestoneCmd)
	issueCmd.AddCommand(issueEstimateCmd)
	issueCmd.AddCommand(issueFlagCmd)
	issueCmd.AddCommand(issueCommentCmd)
	rootCmd.AddCommand(issueCmd)
}

func runIssueGet(cmd *cobra.Command, args []string) error {
	if err := validateFormat(issueOutput); err != nil {
		return err
	}
	service, err := getIssueService()
	if err != nil {
		return err
	}

	issue, err := service.Get(cmd.Context(), args[0], issueWithComments)
	if err != nil {
		return fmt.Errorf("failed to get issue: %w", err)
	}
	return outputIssue(cmd, issueOutput, issue)
}

func runIssueComments(cmd *cobra.Command, args []string) error {
	if err := validateFormat(commentsOutput); err != nil {
		return err
	}
	service, err := getIssueService()
	if err != nil {
		return err
	}

	comments, err := service.Comments(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get comments: %w", err)
	}
	return outputComments(cmd, commentsOutput, comments)
}

func runIssueSearch(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(searchOutput); err != nil {
		return err
	}
	criteria := searchCriteria
	if searchStatus != "" {
		status, ok := domain.ParseIssueStatus(searchStatus)
		if !ok {
			return unknownStatusError(searchStatus)
		}
		criteria.Status = status
	}

	service, err := getIssueService()
	if err != nil {
		return err
	}
	issues, err := service.Search(cmd.Context(), criteria)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchOutput != formatText {
		views := make([]issueView, 0, len(issues))
		for _, issue := range issues {
			views = append(views, newIssueView(issue))
		}
		return writeStructured(cmd, searchOutput, views)
	}
	if len(issues) == 0 {
		cmd.Println("No issues found.")
		return nil
	}
	for _, issue := range issues {
		cmd.Printf("  %s  %-15s %s\n", issue.TrackerID, issue.Status, issue.Description)
	}
	return nil
}

func runIssueStatus(cmd *cobra.Command, args []string) error {
	status, ok := domain.ParseIssueStatus(args[1])
	if !ok {
		return unknownStatusError(args[1])
	}
	service, err := getIssueService()
	if err != nil {
		return err
	}

	if err := service.SetStatus(cmd.Context(), args[0], status); err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}
	cmd.Printf("Issue %s moved to %s.\n", args[0], status)
	return nil
}

func runIssueTargetRelease(cmd *cobra.Command, args []string) error {
	service, err := getIssueService()
	if err != nil {
		return err
	}

	releases := args[1:]
	if err := service.SetTargetRelease(cmd.Context(), args[0], releases...); err != nil {
		return fmt.Errorf("failed to set target release: %w", err)
	}
	cmd.Printf("Issue %s targeted at %s.\n", args[0], strings.Join(releases, ", "))
	return nil
}

func runIssueTargetMilestone(cmd *cobra.Command, args []string) error {
	service, err := getIssueService()
	if err != nil {
		return err
	}

	if err := service.SetTargetMilestone(cmd.Context(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set target milestone: %w", err)
	}
	cmd.Printf("Issue %s milestone set to %s.\n", args[0], args[1])
	return nil
}

func runIssueEstimate(cmd *cobra.Command, args []string) error {
	hours, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: invalid hours %q", domain.ErrInvalidInput, args[1])
	}
	service, err := getIssueService()
	if err != nil {
		return err
	}

	if err := service.SetEstimate(cmd.Context(), args[0], hours); err != nil {
		return fmt.Errorf("failed to set estimate: %w", err)
	}
	cmd.Printf("Issue %s estimated at %gh.\n", args[0], hours)
	return nil
}

func runIssueFlag(cmd *cobra.Command, args []string) error {
	name := args[0]
	status, ok := domain.ParseFlagStatusName(args[1])
	if !ok {
		return fmt.Errorf("%w: unknown flag status %q", domain.ErrInvalidInput, args[1])
	}
	ids := args[2:]

	service, err := getIssueService()
	if err != nil {
		return err
	}

	if err := service.SetFlag(cmd.Context(), ids, name, status); err != nil {
		return fmt.Errorf("failed to set flag: %w", err)
	}
	cmd.Printf("Flag %s set to %s on %d issue(s).\n", name, status.Name(), len(ids))
	return nil
}

func runIssueComment(cmd *cobra.Command, args []string) error {
	service, err := getIssueService()
	if err != nil {
		return err
	}

	if err := service.Comment(cmd.Context(), args[0], args[1], commentPrivate); err != nil {
		return fmt.Errorf("failed to post comment: %w", err)
	}
	cmd.Printf("Comment posted on issue %s.\n", args[0])
	return nil
}

func unknownStatusError(code string) error {
	return fmt.Errorf("%w: unknown status %q (want one of %s)", domain.ErrInvalidInput, code, joinStatuses())
}

func joinStatuses() string {
	statuses := domain.AllIssueStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
