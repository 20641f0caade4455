package bugzilla

import (
	"context"
	"fmt"
	"net/url"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
	"github.com/custodia-labs/bzbridge/internal/core/ports/driven"
	"github.com/custodia-labs/bzbridge/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.IssueTracker = (*Client)(nil)

// Client exposes typed issue operations over a RemoteInvoker.
// It keeps no state between calls and is safe for concurrent use when the
// invoker is.
type Client struct {
	baseURL  *url.URL
	invoker  driven.RemoteInvoker
	commands *commandBuilder
	mapper   *issueMapper
}

type clientOptions struct {
	apiKey string
	flags  *FlagRegistry
}

// Option configures a Client.
type Option func(*clientOptions)

// WithAPIKey authenticates with an API key in addition to, or instead of,
// login and password.
func WithAPIKey(key string) Option {
	return func(o *clientOptions) {
		o.apiKey = key
	}
}

// WithFlagRegistry sets the registry used to resolve acknowledgement flags.
func WithFlagRegistry(r *FlagRegistry) Option {
	return func(o *clientOptions) {
		o.flags = r
	}
}

// NewClient creates a client for the tracker at baseURL. Empty credentials
// are left out of the calls.
func NewClient(
	baseURL *url.URL, login, password string, invoker driven.RemoteInvoker, opts ...Option,
) *Client {
	o := clientOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{
		baseURL:  baseURL,
		invoker:  invoker,
		commands: newCommandBuilder(login, password, o.apiKey),
		mapper:   newIssueMapper(baseURL, o.flags),
	}
}

// BaseURL returns the tracker base URL.
func (c *Client) BaseURL() *url.URL {
	return c.baseURL
}

// GetIssue fetches and maps a single issue. If the id resolves to zero or
// more than one issue, a warning is logged and (nil, nil) is returned.
func (c *Client) GetIssue(ctx context.Context, trackerID string) (*domain.Issue, error) {
	reply, err := c.execute(ctx, MethodGetBug, c.commands.getIssueParams(trackerID))
	if err != nil {
		return nil, err
	}

	bugs, err := optSequence(reply, FieldBugs)
	if err != nil {
		return nil, err
	}
	if len(bugs) != 1 {
		logger.Warn("Zero or more than one bug found with id: %s", trackerID)
		return nil, nil
	}

	rec, err := asStruct(FieldBugs+"[0]", bugs[0])
	if err != nil {
		return nil, err
	}
	issue, err := c.mapper.mapIssue(rec)
	if err != nil {
		return nil, fmt.Errorf("map issue %s: %w", trackerID, err)
	}
	return issue, nil
}

// GetIssueWithComments fetches an issue, then its comments.
func (c *Client) GetIssueWithComments(ctx context.Context, trackerID string) (*domain.Issue, error) {
	issue, err := c.GetIssue(ctx, trackerID)
	if err != nil || issue == nil {
		return issue, err
	}

	comments, err := c.GetCommentsForIssueID(ctx, trackerID)
	if err != nil {
		return nil, err
	}
	issue.Comments = comments
	return issue, nil
}

// GetCommentsForIssue fetches the comments of issue.
func (c *Client) GetCommentsForIssue(ctx context.Context, issue *domain.Issue) ([]domain.Comment, error) {
	if issue == nil {
		return nil, fmt.Errorf("%w: issue cannot be nil", domain.ErrInvalidInput)
	}
	return c.GetCommentsForIssueID(ctx, issue.TrackerID)
}

// GetCommentsForIssueID fetches the comments of the issue with trackerID.
func (c *Client) GetCommentsForIssueID(ctx context.Context, trackerID string) ([]domain.Comment, error) {
	reply, err := c.execute(ctx, MethodGetComment, c.commands.getCommentsParams(trackerID))
	if err != nil {
		return nil, err
	}
	comments, err := mapComments(reply, trackerID)
	if err != nil {
		return nil, fmt.Errorf("map comments of %s: %w", trackerID, err)
	}
	return comments, nil
}

// SearchForIssues always returns no issues. Searching is not supported by
// this connector yet.
func (c *Client) SearchForIssues(_ context.Context, criteria domain.SearchCriteria) ([]*domain.Issue, error) {
	if criteria.IsEmpty() {
		logger.Debug("Search not supported")
	} else {
		logger.Debug("Search not supported, criteria ignored: %+v", criteria)
	}
	return []*domain.Issue{}, nil
}

// UpdateTargetRelease sets the target release(s) of an issue.
func (c *Client) UpdateTargetRelease(ctx context.Context, id int, releases ...string) error {
	return c.UpdateField(ctx, id, domain.UpdateTargetRelease, releases)
}

// UpdateStatus moves an issue to status. Transition rules are the tracker's concern.
func (c *Client) UpdateStatus(ctx context.Context, id int, status domain.IssueStatus) error {
	return c.UpdateField(ctx, id, domain.UpdateStatus, status.String())
}

// UpdateTargetMilestone writes milestone to the target_release field.
// See FieldForUpdate.
func (c *Client) UpdateTargetMilestone(ctx context.Context, id int, milestone string) error {
	return c.UpdateField(ctx, id, domain.UpdateTargetMilestone, milestone)
}

// UpdateEstimate sets the estimated time of an issue, in hours.
func (c *Client) UpdateEstimate(ctx context.Context, id int, hours float64) error {
	return c.UpdateField(ctx, id, domain.UpdateEstimate, hours)
}

// UpdateField applies a single-field update to one issue.
func (c *Client) UpdateField(ctx context.Context, id int, kind domain.UpdateKind, value any) error {
	field, err := FieldForUpdate(kind)
	if err != nil {
		return err
	}
	return c.runCommand(ctx, MethodUpdateBug, c.commands.updateFieldParams(id, field, value))
}

// UpdateFlags sets flag name to status on every issue in ids with a single call.
func (c *Client) UpdateFlags(ctx context.Context, ids []int, name string, status domain.FlagStatus) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no issue ids given", domain.ErrInvalidInput)
	}
	if name == "" {
		return fmt.Errorf("%w: flag name cannot be empty", domain.ErrInvalidInput)
	}
	return c.runCommand(ctx, MethodUpdateBug, c.commands.updateFlagsParams(ids, name, status))
}

// PostComment adds a comment to an issue.
func (c *Client) PostComment(ctx context.Context, id int, text string, private bool) error {
	return c.runCommand(ctx, MethodAddComment, c.commands.postCommentParams(id, text, private))
}

// execute invokes method and wraps any failure in a TransportError.
func (c *Client) execute(ctx context.Context, method string, params map[string]any) (map[string]any, error) {
	logger.Debug("Invoking %s", method)

	reply, err := c.invoker.Invoke(ctx, method, params)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	if reply == nil {
		reply = map[string]any{}
	}
	return reply, nil
}

// runCommand invokes an update method. A nil error is the only success signal.
func (c *Client) runCommand(ctx context.Context, method string, params map[string]any) error {
	_, err := c.execute(ctx, method, params)
	return err
}
