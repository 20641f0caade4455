package driven

import (
	"context"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
)

// IssueTracker exposes typed issue operations against a remote tracker.
//
// Lookups that resolve to zero or several issues return (nil, nil).
// Updates report success with a nil error; a failed call is never reported
// as success.
type IssueTracker interface {
	// GetIssue fetches and maps a single issue.
	GetIssue(ctx context.Context, trackerID string) (*domain.Issue, error)

	// GetIssueWithComments fetches an issue and attaches its comments.
	GetIssueWithComments(ctx context.Context, trackerID string) (*domain.Issue, error)

	// GetCommentsForIssue fetches the comments of issue.
	GetCommentsForIssue(ctx context.Context, issue *domain.Issue) ([]domain.Comment, error)

	// GetCommentsForIssueID fetches the comments of the issue with trackerID.
	GetCommentsForIssueID(ctx context.Context, trackerID string) ([]domain.Comment, error)

	// SearchForIssues searches the tracker.
	SearchForIssues(ctx context.Context, criteria domain.SearchCriteria) ([]*domain.Issue, error)

	// UpdateField applies a single-field update to one issue.
	UpdateField(ctx context.Context, id int, kind domain.UpdateKind, value any) error

	// UpdateFlags sets flag name to status on every issue in ids in one call.
	UpdateFlags(ctx context.Context, ids []int, name string, status domain.FlagStatus) error

	// PostComment adds a comment to an issue.
	PostComment(ctx context.Context, id int, text string, private bool) error
}
