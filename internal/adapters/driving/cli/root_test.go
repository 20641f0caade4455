package cli

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bzbridge/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bzbridge/internal/core/domain"
	"github.com/custodia-labs/bzbridge/internal/core/ports/driven"
	"github.com/custodia-labs/bzbridge/internal/core/ports/driving"
)

// mockIssueService records calls and serves a fixed issue.
type mockIssueService struct {
	issue    *domain.Issue
	comments []domain.Comment
	err      error

	calls []string
	args  [][]any
}

func (m *mockIssueService) record(name string, args ...any) {
	m.calls = append(m.calls, name)
	m.args = append(m.args, args)
}

func (m *mockIssueService) Get(_ context.Context, id string, withComments bool) (*domain.Issue, error) {
	m.record("Get", id, withComments)
	if m.err != nil {
		return nil, m.err
	}
	issue := *m.issue
	if withComments {
		issue.Comments = m.comments
	}
	return &issue, nil
}

func (m *mockIssueService) Comments(_ context.Context, id string) ([]domain.Comment, error) {
	m.record("Comments", id)
	return m.comments, m.err
}

func (m *mockIssueService) Search(_ context.Context, criteria domain.SearchCriteria) ([]*domain.Issue, error) {
	m.record("Search", criteria)
	return []*domain.Issue{}, m.err
}

func (m *mockIssueService) SetStatus(_ context.Context, id string, status domain.IssueStatus) error {
	m.record("SetStatus", id, status)
	return m.err
}

func (m *mockIssueService) SetTargetRelease(_ context.Context, id string, releases ...string) error {
	m.record("SetTargetRelease", id, releases)
	return m.err
}

func (m *mockIssueService) SetTargetMilestone(_ context.Context, id string, milestone string) error {
	m.record("SetTargetMilestone", id, milestone)
	return m.err
}

func (m *mockIssueService) SetEstimate(_ context.Context, id string, hours float64) error {
	m.record("SetEstimate", id, hours)
	return m.err
}

func (m *mockIssueService) SetFlag(_ context.Context, ids []string, name string, status domain.FlagStatus) error {
	m.record("SetFlag", ids, name, status)
	return m.err
}

func (m *mockIssueService) Comment(_ context.Context, id string, text string, private bool) error {
	m.record("Comment", id, text, private)
	return m.err
}

var _ driving.IssueService = (*mockIssueService)(nil)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func sampleIssue(t *testing.T) *domain.Issue {
	t.Helper()
	estimate := 2.5

	issue := domain.NewIssue(mustURL(t, "https://bugzilla.example.com/show_bug.cgi?id=1234"))
	issue.TrackerID = "1234"
	issue.Description = "Server fails to start"
	issue.Assignee = "dev@example.com"
	issue.Type = domain.IssueTypeBug
	issue.Status = domain.IssueStatusNew
	issue.Product = "Widget"
	issue.Component = "core"
	issue.Release = domain.Release{Version: "7.1.0", Milestone: "GA"}
	issue.DependsOn = []*url.URL{mustURL(t, "https://bugzilla.example.com/show_bug.cgi?id=1")}
	issue.Tracking.Estimated = &estimate
	issue.Stage.SetStatus(domain.FlagDev, domain.FlagStatusAccepted)
	issue.Streams = []domain.Stream{{Name: "jboss-eap-7.1.z", Status: domain.FlagStatusSet}}
	return issue
}

// setupTestServices installs a mock issue service and a temporary config
// store, and resets command state when the test ends.
func setupTestServices(t *testing.T) (*mockIssueService, *file.ConfigStore) {
	t.Helper()

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	mock := &mockIssueService{
		issue:    sampleIssue(t),
		comments: []domain.Comment{{ID: "10", Body: "First"}, {ID: "11", Body: "Second", Private: true}},
	}

	oldIssue, oldStore, oldFactories := issueService, configStore, factories
	issueService = mock
	configStore = store
	t.Cleanup(func() {
		issueService, configStore, factories = oldIssue, oldStore, oldFactories
		resetFlags()
	})
	return mock, store
}

// resetFlags restores flag variables that persist between executions.
func resetFlags() {
	issueWithComments = false
	issueOutput = formatText
	commentsOutput = formatText
	searchOutput = formatText
	configShowOutput = formatText
	versionOutput = formatText
	commentPrivate = false
	searchCriteria = domain.SearchCriteria{}
	searchStatus = ""
	configDir = ""
	verbose = false
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "bzbridge", rootCmd.Use)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag, "verbose flag should exist")
	assert.Equal(t, "v", flag.Shorthand)

	flag = rootCmd.PersistentFlags().Lookup("config-dir")
	require.NotNil(t, flag, "config-dir flag should exist")
	assert.Equal(t, "", flag.DefValue)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "issue")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "version")
}

func TestGetIssueService_NotConfigured(t *testing.T) {
	oldIssue, oldStore, oldFactories := issueService, configStore, factories
	issueService, configStore, factories = nil, nil, Factories{}
	defer func() {
		issueService, configStore, factories = oldIssue, oldStore, oldFactories
	}()

	_, err := execute(t, "issue", "get", "1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "issue service not configured")
}

func TestGetIssueService_BuildsFromFactories(t *testing.T) {
	oldIssue, oldStore, oldFactories := issueService, configStore, factories
	defer func() {
		issueService, configStore, factories = oldIssue, oldStore, oldFactories
		resetFlags()
	}()

	dir := t.TempDir()
	mock := &mockIssueService{issue: sampleIssue(t)}
	var openedDir string
	var builtWith driven.ConfigStore

	issueService, configStore = nil, nil
	factories = Factories{
		ConfigStore: func(d string) (driven.ConfigStore, error) {
			openedDir = d
			return file.NewConfigStore(d)
		},
		IssueService: func(store driven.ConfigStore) (driving.IssueService, error) {
			builtWith = store
			return mock, nil
		},
	}

	out, err := execute(t, "--config-dir", dir, "issue", "get", "1234")

	require.NoError(t, err)
	assert.Contains(t, out, "Issue 1234")
	assert.Equal(t, dir, openedDir)
	assert.NotNil(t, builtWith)
	assert.Equal(t, []string{"Get"}, mock.calls)
}

func TestGetIssueService_FactoryError(t *testing.T) {
	oldIssue, oldStore, oldFactories := issueService, configStore, factories
	defer func() {
		issueService, configStore, factories = oldIssue, oldStore, oldFactories
	}()

	issueService = nil
	configStore, _ = file.NewConfigStore(t.TempDir())
	factories = Factories{
		IssueService: func(driven.ConfigStore) (driving.IssueService, error) {
			return nil, domain.ErrTrackerNotConfigured
		},
	}

	_, err := execute(t, "issue", "get", "1")

	assert.ErrorIs(t, err, domain.ErrTrackerNotConfigured)
	assert.Nil(t, issueService)
}

func TestGetConfigStore_OpenError(t *testing.T) {
	oldIssue, oldStore, oldFactories := issueService, configStore, factories
	defer func() {
		issueService, configStore, factories = oldIssue, oldStore, oldFactories
	}()

	issueService, configStore = nil, nil
	factories = Factories{
		ConfigStore: func(string) (driven.ConfigStore, error) {
			return nil, errors.New("permission denied")
		},
	}

	_, err := execute(t, "config", "show")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config")
}

func TestExecute_SetsVersion(t *testing.T) {
	originalVersion, oldFactories := version, factories
	defer func() { version, factories = originalVersion, oldFactories }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := Execute(context.Background(), "1.2.3", Factories{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "bzbridge version 1.2.3")
}
