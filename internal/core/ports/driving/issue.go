package driving

import (
	"context"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
)

// IssueService provides issue operations to external actors.
// Identifiers are accepted as entered by the user and validated here.
type IssueService interface {
	// Get retrieves an issue, optionally with its comments.
	// Returns domain.ErrNotFound if the lookup is empty or ambiguous.
	Get(ctx context.Context, id string, withComments bool) (*domain.Issue, error)

	// Comments retrieves the comments of an issue.
	Comments(ctx context.Context, id string) ([]domain.Comment, error)

	// Search searches for issues.
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]*domain.Issue, error)

	// SetStatus moves an issue to status.
	SetStatus(ctx context.Context, id string, status domain.IssueStatus) error

	// SetTargetRelease sets the target release(s) of an issue.
	SetTargetRelease(ctx context.Context, id string, releases ...string) error

	// SetTargetMilestone sets the target milestone of an issue.
	SetTargetMilestone(ctx context.Context, id string, milestone string) error

	// SetEstimate sets the estimated time of an issue, in hours.
	SetEstimate(ctx context.Context, id string, hours float64) error

	// SetFlag sets flag name to status on all issues in ids.
	SetFlag(ctx context.Context, ids []string, name string, status domain.FlagStatus) error

	// Comment posts a comment on an issue.
	Comment(ctx context.Context, id string, text string, private bool) error
}
