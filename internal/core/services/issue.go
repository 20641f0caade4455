package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
	"github.com/custodia-labs/bzbridge/internal/core/ports/driven"
	"github.com/custodia-labs/bzbridge/internal/core/ports/driving"
	"github.com/custodia-labs/bzbridge/internal/logger"
)

// Ensure IssueService implements the interface.
var _ driving.IssueService = (*IssueService)(nil)

// IssueService validates user input and delegates to an issue tracker.
type IssueService struct {
	tracker driven.IssueTracker
}

// NewIssueService creates a new issue service.
func NewIssueService(tracker driven.IssueTracker) *IssueService {
	return &IssueService{tracker: tracker}
}

// Get retrieves an issue, optionally with its comments.
func (s *IssueService) Get(ctx context.Context, id string, withComments bool) (*domain.Issue, error) {
	n, err := parseIssueID(id)
	if err != nil {
		return nil, err
	}
	trackerID := strconv.Itoa(n)

	logger.Section("Issue Lookup")
	logger.Debug("Fetching issue %s (comments: %t)", trackerID, withComments)

	var issue *domain.Issue
	if withComments {
		issue, err = s.tracker.GetIssueWithComments(ctx, trackerID)
	} else {
		issue, err = s.tracker.GetIssue(ctx, trackerID)
	}
	if err != nil {
		return nil, fmt.Errorf("get issue %s: %w", trackerID, err)
	}
	if issue == nil {
		return nil, fmt.Errorf("issue %s: %w", trackerID, domain.ErrNotFound)
	}

	logger.Debug("Issue %s: status=%s, %d stream(s)", trackerID, issue.Status, len(issue.Streams))
	return issue, nil
}

// Comments retrieves the comments of an issue.
func (s *IssueService) Comments(ctx context.Context, id string) ([]domain.Comment, error) {
	n, err := parseIssueID(id)
	if err != nil {
		return nil, err
	}

	comments, err := s.tracker.GetCommentsForIssueID(ctx, strconv.Itoa(n))
	if err != nil {
		return nil, fmt.Errorf("get comments of %d: %w", n, err)
	}
	logger.Debug("Issue %d has %d comment(s)", n, len(comments))
	return comments, nil
}

// Search searches for issues.
func (s *IssueService) Search(ctx context.Context, criteria domain.SearchCriteria) ([]*domain.Issue, error) {
	if criteria.MaxResults < 0 {
		return nil, fmt.Errorf("%w: max results cannot be negative", domain.ErrInvalidInput)
	}
	return s.tracker.SearchForIssues(ctx, criteria)
}

// SetStatus moves an issue to status.
func (s *IssueService) SetStatus(ctx context.Context, id string, status domain.IssueStatus) error {
	if _, ok := domain.ParseIssueStatus(status.String()); !ok {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	return s.update(ctx, id, domain.UpdateStatus, status.String())
}

// SetTargetRelease sets the target release(s) of an issue.
func (s *IssueService) SetTargetRelease(ctx context.Context, id string, releases ...string) error {
	cleaned := make([]string, 0, len(releases))
	for _, r := range releases {
		if r = strings.TrimSpace(r); r != "" {
			cleaned = append(cleaned, r)
		}
	}
	if len(cleaned) == 0 {
		return fmt.Errorf("%w: at least one release is required", domain.ErrInvalidInput)
	}
	return s.update(ctx, id, domain.UpdateTargetRelease, cleaned)
}

// SetTargetMilestone sets the target milestone of an issue.
func (s *IssueService) SetTargetMilestone(ctx context.Context, id string, milestone string) error {
	milestone = strings.TrimSpace(milestone)
	if milestone == "" {
		return fmt.Errorf("%w: milestone cannot be empty", domain.ErrInvalidInput)
	}
	return s.update(ctx, id, domain.UpdateTargetMilestone, milestone)
}

// SetEstimate sets the estimated time of an issue, in hours.
func (s *IssueService) SetEstimate(ctx context.Context, id string, hours float64) error {
	if hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return fmt.Errorf("%w: estimate must be a non-negative number of hours", domain.ErrInvalidInput)
	}
	return s.update(ctx, id, domain.UpdateEstimate, hours)
}

// SetFlag sets flag name to status on all issues in ids with one remote call.
func (s *IssueService) SetFlag(ctx context.Context, ids []string, name string, status domain.FlagStatus) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: flag name cannot be empty", domain.ErrInvalidInput)
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: at least one issue id is required", domain.ErrInvalidInput)
	}

	nums := make([]int, 0, len(ids))
	for _, id := range ids {
		n, err := parseIssueID(id)
		if err != nil {
			return err
		}
		nums = append(nums, n)
	}

	logger.Debug("Setting %s=%s on %d issue(s)", name, status.Symbol(), len(nums))
	if err := s.tracker.UpdateFlags(ctx, nums, name, status); err != nil {
		return fmt.Errorf("set flag %s: %w", name, err)
	}
	return nil
}

// Comment posts a comment on an issue.
func (s *IssueService) Comment(ctx context.Context, id string, text string, private bool) error {
	n, err := parseIssueID(id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: comment cannot be empty", domain.ErrInvalidInput)
	}

	logger.Debug("Posting comment on %d (private: %t)", n, private)
	if err := s.tracker.PostComment(ctx, n, text, private); err != nil {
		return fmt.Errorf("comment on %d: %w", n, err)
	}
	return nil
}

// update applies a single-field update after validating id.
func (s *IssueService) update(ctx context.Context, id string, kind domain.UpdateKind, value any) error {
	n, err := parseIssueID(id)
	if err != nil {
		return err
	}

	logger.Debug("Updating %s of %d", kind, n)
	if err := s.tracker.UpdateField(ctx, n, kind, value); err != nil {
		return fmt.Errorf("update %s of %d: %w", kind, n, err)
	}
	return nil
}

// parseIssueID accepts a positive decimal issue number, optionally prefixed
// with '#'.
func parseIssueID(id string) (int, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(id), "#")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: invalid issue id %q", domain.ErrInvalidInput, id)
	}
	return n, nil
}
