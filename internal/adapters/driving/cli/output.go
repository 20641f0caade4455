package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
)

// Output formats accepted by -o.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("%w: unknown output format %q (want text, json or yaml)", domain.ErrInvalidInput, format)
	}
}

// Text styles.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	ackStyle   = map[domain.FlagStatus]lipgloss.Style{
		domain.FlagStatusAccepted: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		domain.FlagStatusRejected: lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		domain.FlagStatusSet:      lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
	}
)

// issueView is the serialised form of an issue.
type issueView struct {
	ID             string            `json:"id" yaml:"id"`
	URL            string            `json:"url" yaml:"url"`
	Description    string            `json:"description,omitempty" yaml:"description,omitempty"`
	Assignee       string            `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Type           string            `json:"type,omitempty" yaml:"type,omitempty"`
	Status         string            `json:"status,omitempty" yaml:"status,omitempty"`
	Product        string            `json:"product,omitempty" yaml:"product,omitempty"`
	Component      string            `json:"component,omitempty" yaml:"component,omitempty"`
	Version        string            `json:"version" yaml:"version"`
	Milestone      string            `json:"milestone,omitempty" yaml:"milestone,omitempty"`
	DependsOn      []string          `json:"depends_on" yaml:"depends_on"`
	Blocks         []string          `json:"blocks" yaml:"blocks"`
	EstimatedHours *float64          `json:"estimated_hours,omitempty" yaml:"estimated_hours,omitempty"`
	WorkedHours    *float64          `json:"worked_hours,omitempty" yaml:"worked_hours,omitempty"`
	Stage          map[string]string `json:"stage" yaml:"stage"`
	Streams        []streamView      `json:"streams" yaml:"streams"`
	Comments       []commentView     `json:"comments,omitempty" yaml:"comments,omitempty"`
}

type streamView struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
}

type commentView struct {
	ID      string `json:"id" yaml:"id"`
	Body    string `json:"body" yaml:"body"`
	Private bool   `json:"private,omitempty" yaml:"private,omitempty"`
}

func newIssueView(issue *domain.Issue) issueView {
	v := issueView{
		ID:             issue.TrackerID,
		URL:            urlString(issue.URL),
		Description:    issue.Description,
		Assignee:       issue.Assignee,
		Type:           issue.Type.String(),
		Status:         issue.Status.String(),
		Product:        issue.Product,
		Component:      issue.Component,
		Version:        issue.Release.Version,
		Milestone:      issue.Release.Milestone,
		DependsOn:      urlStrings(issue.DependsOn),
		Blocks:         urlStrings(issue.Blocks),
		EstimatedHours: issue.Tracking.Estimated,
		WorkedHours:    issue.Tracking.Worked,
		Stage:          make(map[string]string, len(issue.Stage)),
		Streams:        make([]streamView, 0, len(issue.Streams)),
	}
	for flag, status := range issue.Stage {
		v.Stage[flag.String()] = status.Name()
	}
	for _, s := range issue.Streams {
		v.Streams = append(v.Streams, streamView{Name: s.Name, Status: s.Status.Name()})
	}
	v.Comments = newCommentViews(issue.Comments)
	return v
}

func newCommentViews(comments []domain.Comment) []commentView {
	if len(comments) == 0 {
		return nil
	}
	views := make([]commentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, commentView{ID: c.ID, Body: c.Body, Private: c.Private})
	}
	return views
}

func urlString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

func urlStrings(urls []*url.URL) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		out = append(out, urlString(u))
	}
	return out
}

// writeStructured prints v as JSON or YAML.
func writeStructured(cmd *cobra.Command, format string, v any) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		cmd.Println(string(data))
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		cmd.Print(string(data))
	default:
		return validateFormat(format)
	}
	return nil
}

func outputIssue(cmd *cobra.Command, format string, issue *domain.Issue) error {
	if format != formatText {
		return writeStructured(cmd, format, newIssueView(issue))
	}

	cmd.Println(titleStyle.Render(fmt.Sprintf("Issue %s", issue.TrackerID)))
	printField(cmd, "URL", urlString(issue.URL))
	printField(cmd, "Summary", issue.Description)
	printField(cmd, "Assignee", issue.Assignee)
	printField(cmd, "Type", issue.Type.String())
	printField(cmd, "Status", issue.Status.String())
	printField(cmd, "Product", issue.Product)
	printField(cmd, "Component", issue.Component)
	printField(cmd, "Version", issue.Release.Version)
	printField(cmd, "Milestone", issue.Release.Milestone)
	if issue.Tracking.Estimated != nil {
		printField(cmd, "Estimated", fmt.Sprintf("%gh", *issue.Tracking.Estimated))
	}
	if issue.Tracking.Worked != nil {
		printField(cmd, "Worked", fmt.Sprintf("%gh", *issue.Tracking.Worked))
	}
	if len(issue.DependsOn) > 0 {
		printField(cmd, "Depends on", strings.Join(urlStrings(issue.DependsOn), ", "))
	}
	if len(issue.Blocks) > 0 {
		printField(cmd, "Blocks", strings.Join(urlStrings(issue.Blocks), ", "))
	}

	if len(issue.Stage) > 0 {
		cmd.Println()
		cmd.Println(titleStyle.Render("Acks"))
		for _, flag := range domain.AllFlags() {
			if issue.Stage.HasFlag(flag) {
				cmd.Printf("  %-4s %s\n", flag, renderStatus(issue.Stage.Status(flag)))
			}
		}
	}

	if len(issue.Streams) > 0 {
		cmd.Println()
		cmd.Println(titleStyle.Render("Streams"))
		for _, s := range issue.Streams {
			cmd.Printf("  %s %s\n", s.Name, renderStatus(s.Status))
		}
	}

	if len(issue.Comments) > 0 {
		cmd.Println()
		outputCommentsText(cmd, issue.Comments)
	}
	return nil
}

func outputComments(cmd *cobra.Command, format string, comments []domain.Comment) error {
	if format != formatText {
		views := newCommentViews(comments)
		if views == nil {
			views = []commentView{}
		}
		return writeStructured(cmd, format, views)
	}
	if len(comments) == 0 {
		cmd.Println("No comments.")
		return nil
	}
	outputCommentsText(cmd, comments)
	return nil
}

func outputCommentsText(cmd *cobra.Command, comments []domain.Comment) {
	cmd.Println(titleStyle.Render(fmt.Sprintf("Comments (%d)", len(comments))))
	for _, c := range comments {
		header := "#" + c.ID
		if c.Private {
			header += " (private)"
		}
		cmd.Printf("  %s\n", labelStyle.Render(header))
		for _, line := range strings.Split(c.Body, "\n") {
			cmd.Printf("    %s\n", line)
		}
	}
}

func printField(cmd *cobra.Command, label, value string) {
	if value == "" {
		return
	}
	cmd.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-11s", label+":")), value)
}

func renderStatus(status domain.FlagStatus) string {
	text := fmt.Sprintf("%s (%s)", strings.TrimSpace(status.Symbol()), status.Name())
	if status == domain.FlagStatusNotSet {
		text = status.Name()
	}
	if style, ok := ackStyle[status]; ok {
		return style.Render(text)
	}
	return text
}
