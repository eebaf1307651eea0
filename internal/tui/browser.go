// Package tui is the interactive conflict browser: a severity-coloured
// list of the quarter's conflicts with a drill-down detail view.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/conflict"
	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

type viewState int

const (
	listView viewState = iota
	detailView
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k")),
	Down:  key.NewBinding(key.WithKeys("down", "j")),
	Enter: key.NewBinding(key.WithKeys("enter")),
	Back:  key.NewBinding(key.WithKeys("esc")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

type Browser struct {
	cycleName string
	result    model.ConflictDetectionResult
	state     viewState
	cursor    int
	width     int
}

func NewBrowser(cycleName string, result model.ConflictDetectionResult) *Browser {
	return &Browser{
		cycleName: cycleName,
		result:    result,
		state:     listView,
	}
}

func (b *Browser) Init() tea.Cmd {
	return nil
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, keys.Up):
			if b.state == listView && b.cursor > 0 {
				b.cursor--
			}
		case key.Matches(msg, keys.Down):
			if b.state == listView && b.cursor < len(b.result.Conflicts)-1 {
				b.cursor++
			}
		case key.Matches(msg, keys.Enter):
			if b.state == listView && len(b.result.Conflicts) > 0 {
				b.state = detailView
			}
		case key.Matches(msg, keys.Back):
			if b.state == detailView {
				b.state = listView
			} else {
				return b, tea.Quit
			}
		}
	}
	return b, nil
}

func (b *Browser) View() string {
	switch b.state {
	case detailView:
		return b.viewDetail()
	default:
		return b.viewList()
	}
}

func (b *Browser) viewList() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Allocation conflicts — %s", b.cycleName)))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render(fmt.Sprintf(
		"%d conflicts · risk %d/100 · %d teams · %d epics affected",
		b.result.Summary.Total, b.result.OverallRiskScore,
		b.result.AffectedTeamsCount, b.result.AffectedEpicsCount,
	)))
	sb.WriteString("\n")

	if len(b.result.Conflicts) == 0 {
		sb.WriteString(dimStyle.Render("No conflicts detected for this cycle."))
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render("q: quit"))
		return sb.String()
	}

	for i, c := range b.result.Conflicts {
		prefix := "  "
		// Pad before styling, so ANSI codes don't skew the columns.
		line := fmt.Sprintf("%s %s %s",
			conflict.TypeIcon(c.Type),
			severityStyle(c.Severity).Render(fmt.Sprintf("%-8s", c.Severity)),
			c.Title,
		)
		if i == b.cursor {
			prefix = selectedStyle.Render("> ")
		}
		sb.WriteString(prefix + line + "\n")
	}

	sb.WriteString(helpStyle.Render("↑/↓: select · enter: details · q: quit"))
	return sb.String()
}

func (b *Browser) viewDetail() string {
	c := b.result.Conflicts[b.cursor]

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", conflict.TypeIcon(c.Type), c.Title)))
	sb.WriteString("\n")
	sb.WriteString(severityStyle(c.Severity).Render(strings.ToUpper(string(c.Severity))))
	sb.WriteString(dimStyle.Render("  " + c.ID))
	sb.WriteString("\n\n")
	sb.WriteString(c.Description)
	sb.WriteString("\n\n")

	var detail strings.Builder
	detail.WriteString(fmt.Sprintf("Delay risk      %s\n", impactBar(c.Impact.DelayRisk)))
	detail.WriteString(fmt.Sprintf("Quality risk    %s\n", impactBar(c.Impact.QualityRisk)))
	detail.WriteString(fmt.Sprintf("Resource waste  %s\n", impactBar(c.Impact.ResourceWaste)))
	detail.WriteString("\n")
	detail.WriteString(fmt.Sprintf("Teams: %s\n", strings.Join(c.AffectedTeams, ", ")))
	if len(c.AffectedEpics) > 0 {
		detail.WriteString(fmt.Sprintf("Epics: %s\n", strings.Join(c.AffectedEpics, ", ")))
	}
	sb.WriteString(boxStyle.Render(strings.TrimRight(detail.String(), "\n")))
	sb.WriteString("\n\n")

	sb.WriteString("Suggested actions:\n")
	for _, action := range c.SuggestedActions {
		sb.WriteString("  • " + action + "\n")
	}

	sb.WriteString(helpStyle.Render("esc: back · q: quit"))
	return sb.String()
}

// impactBar renders a 0–100 value as a 20-cell bar.
func impactBar(v float64) string {
	filled := int(v / 5)
	if filled > 20 {
		filled = 20
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	return fmt.Sprintf("%s %3.0f", bar, v)
}
