// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// SelectionAction represents the user's action in a selection UI.
type SelectionAction int

const (
	// ActionNone indicates no action was taken.
	ActionNone SelectionAction = iota
	// ActionSelected indicates the user selected an item.
	ActionSelected
	// ActionBack indicates the user backed out to the previous menu.
	ActionBack
	// ActionQuit indicates the user quit the session entirely.
	ActionQuit
)

// Choice is one selectable entry: a label plus an optional detail line.
type Choice struct {
	Label  string
	Detail string
}

// ChoiceResult holds the result of a selection.
type ChoiceResult struct {
	Action SelectionAction
	// Index is the 0-based position of the selected choice.
	Index int
}

type choiceItem struct {
	index  int
	choice Choice
}

func (i choiceItem) FilterValue() string { return i.choice.Label }

type itemStyles struct {
	label         lipgloss.Style
	selectedLabel lipgloss.Style
	detail        lipgloss.Style
	title         lipgloss.Style
	help          lipgloss.Style
}

func newItemStyles() itemStyles {
	return itemStyles{
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingLeft(2),
		selectedLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true),
		detail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true).
			PaddingLeft(4),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")).
			MarginBottom(1),
		help: lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244")),
	}
}

type choiceDelegate struct {
	styles itemStyles
}

func (d choiceDelegate) Height() int {
	return 2
}
func (d choiceDelegate) Spacing() int                        { return 0 }
func (d choiceDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d choiceDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	ci, ok := item.(choiceItem)
	if !ok {
		return
	}

	label := fmt.Sprintf("%d. %s", ci.index+1, ci.choice.Label)
	if idx == m.Index() {
		label = d.styles.selectedLabel.Render("> " + label)
	} else {
		label = d.styles.label.Render(label)
	}

	detail := ci.choice.Detail
	if detail != "" {
		detail = d.styles.detail.Render(truncate(detail, m.Width()-6))
	}

	if detail == "" {
		_, _ = fmt.Fprint(w, label)
		return
	}
	_, _ = fmt.Fprint(w, lipgloss.JoinVertical(lipgloss.Left, label, detail))
}

type selectModel struct {
	list   list.Model
	title  string
	styles itemStyles
	result ChoiceResult
}

func newSelectModel(title string, choices []Choice) *selectModel {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = choiceItem{index: i, choice: c}
	}

	styles := newItemStyles()
	l := list.New(items, choiceDelegate{styles: styles}, defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &selectModel{
		list:   l,
		title:  title,
		styles: styles,
		result: ChoiceResult{Action: ActionNone, Index: -1},
	}
}

func (m *selectModel) Init() tea.Cmd { return nil }

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(choiceItem); ok {
				m.result = ChoiceResult{Action: ActionSelected, Index: item.index}
			}
			return m, tea.Quit
		case "esc", "b":
			m.result = ChoiceResult{Action: ActionBack, Index: -1}
			return m, tea.Quit
		case "q", "ctrl+c":
			m.result = ChoiceResult{Action: ActionQuit, Index: -1}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *selectModel) View() string {
	title := m.styles.title.Render(m.title)
	help := m.styles.help.Render("enter: select • esc: back • q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.list.View(), help)
}

// SelectChoice presents an interactive selection list and returns the user's
// pick. An empty choice list returns ActionBack immediately.
func SelectChoice(title string, choices []Choice) (ChoiceResult, error) {
	if len(choices) == 0 {
		return ChoiceResult{Action: ActionBack, Index: -1}, nil
	}

	m := newSelectModel(title, choices)
	finalModel, err := runProgram(m)
	if err != nil {
		return ChoiceResult{}, err
	}

	if typed, ok := finalModel.(*selectModel); ok {
		return typed.result, nil
	}
	return ChoiceResult{}, fmt.Errorf("unexpected program result")
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	runes := []rune(value)
	if width <= 0 || len(runes) <= width {
		return value
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
