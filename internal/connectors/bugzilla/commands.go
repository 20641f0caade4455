package bugzilla

import (
	"fmt"
	"maps"
	"slices"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
)

// updateFields maps each update kind to the field Bug.update writes.
//
// UpdateTargetMilestone writes target_release, not target_milestone. Existing
// tracker automation depends on this, so it is kept as is.
var updateFields = map[domain.UpdateKind]string{
	domain.UpdateTargetRelease:   FieldTargetRelease,
	domain.UpdateStatus:          FieldStatus,
	domain.UpdateTargetMilestone: FieldTargetRelease,
	domain.UpdateEstimate:        FieldEstimatedTime,
}

// FieldForUpdate returns the remote field written by kind.
func FieldForUpdate(kind domain.UpdateKind) (string, error) {
	field, ok := updateFields[kind]
	if !ok {
		return "", fmt.Errorf("%w: unsupported update %q", domain.ErrInvalidInput, kind)
	}
	return field, nil
}

// commandBuilder builds parameter sets for calls. Every set starts from a
// copy of the credentials so calls never share a map.
type commandBuilder struct {
	credentials map[string]any
}

func newCommandBuilder(login, password, apiKey string) *commandBuilder {
	creds := map[string]any{}
	if apiKey != "" {
		creds[FieldAPIKey] = apiKey
	}
	if login != "" {
		creds[FieldLogin] = login
	}
	if password != "" {
		creds[FieldPassword] = password
	}
	return &commandBuilder{credentials: creds}
}

func (b *commandBuilder) params() map[string]any {
	return maps.Clone(b.credentials)
}

// getIssueParams builds the Bug.get parameters for one issue.
func (b *commandBuilder) getIssueParams(trackerID string) map[string]any {
	p := b.params()
	p[FieldIssueIDs] = trackerID
	p[FieldIncludeFields] = IssueFields()
	p[FieldPermissive] = true
	return p
}

// getCommentsParams builds the Bug.comments parameters for one issue.
func (b *commandBuilder) getCommentsParams(trackerID string) map[string]any {
	p := b.params()
	p[FieldIssueIDs] = trackerID
	p[FieldIncludeFields] = CommentFields()
	return p
}

// updateFieldParams builds a Bug.update that writes a single field.
func (b *commandBuilder) updateFieldParams(id int, field string, value any) map[string]any {
	p := b.params()
	p[FieldIssueIDs] = []int{id}
	p[field] = value
	return p
}

// updateFlagsParams builds one Bug.update that sets a flag on every issue in
// ids. Permissive matching makes the tracker skip ids it cannot resolve.
func (b *commandBuilder) updateFlagsParams(ids []int, name string, status domain.FlagStatus) map[string]any {
	update := map[string]any{
		FieldFlagName:   name,
		FieldFlagStatus: status.Symbol(),
	}
	p := b.params()
	p[FieldIssueIDs] = slices.Clone(ids)
	p[FieldFlags] = []any{update}
	p[FieldPermissive] = true
	return p
}

// postCommentParams builds a Bug.add_comment call.
func (b *commandBuilder) postCommentParams(id int, text string, private bool) map[string]any {
	p := b.params()
	p[FieldID] = id
	p[FieldComment] = text
	p[FieldPrivateComment] = private
	return p
}
