package bugzilla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
)

func commentsReply(trackerID string, comments ...any) map[string]any {
	return map[string]any{
		"bugs": map[string]any{
			trackerID: map[string]any{"comments": comments},
		},
	}
}

func TestMapComments(t *testing.T) {
	reply := commentsReply("1234",
		map[string]any{"id": int64(1), "text": "first", "is_private": false},
		map[string]any{"id": int64(2), "text": "second", "is_private": true},
		map[string]any{"id": "3"},
	)

	comments, err := mapComments(reply, "1234")
	require.NoError(t, err)

	assert.Equal(t, []domain.Comment{
		{ID: "1", Body: "first"},
		{ID: "2", Body: "second", Private: true},
		{ID: "3"},
	}, comments)
}

func TestMapComments_Empty(t *testing.T) {
	tests := []struct {
		name  string
		reply map[string]any
	}{
		{name: "no bugs member", reply: map[string]any{}},
		{name: "null bugs member", reply: map[string]any{"bugs": nil}},
		{name: "no entry for issue", reply: commentsReply("999")},
		{name: "no comments", reply: commentsReply("1234")},
		{name: "null comments", reply: map[string]any{
			"bugs": map[string]any{"1234": map[string]any{"comments": nil}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments, err := mapComments(tt.reply, "1234")
			require.NoError(t, err)
			assert.NotNil(t, comments)
			assert.Empty(t, comments)
		})
	}
}

func TestMapComments_Errors(t *testing.T) {
	tests := []struct {
		name  string
		reply map[string]any
		check func(err error) bool
	}{
		{
			name:  "bugs not a struct",
			reply: map[string]any{"bugs": []any{}},
			check: IsShapeMismatch,
		},
		{
			name:  "issue entry not a struct",
			reply: map[string]any{"bugs": map[string]any{"1234": "x"}},
			check: IsShapeMismatch,
		},
		{
			name: "comments not an array",
			reply: map[string]any{
				"bugs": map[string]any{"1234": map[string]any{"comments": "x"}},
			},
			check: IsShapeMismatch,
		},
		{
			name:  "comment not a struct",
			reply: commentsReply("1234", "text"),
			check: IsShapeMismatch,
		},
		{
			name:  "comment without id",
			reply: commentsReply("1234", map[string]any{"text": "x"}),
			check: IsMissingField,
		},
		{
			name:  "private flag not a boolean",
			reply: commentsReply("1234", map[string]any{"id": int64(1), "is_private": "yes"}),
			check: IsShapeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments, err := mapComments(tt.reply, "1234")
			require.Error(t, err)
			assert.Nil(t, comments)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

func TestMapComments_ErrorNamesPath(t *testing.T) {
	_, err := mapComments(commentsReply("1234", map[string]any{"id": int64(1)}, 5), "1234")

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "bugs.1234.comments[1]", shapeErr.Field)
}
