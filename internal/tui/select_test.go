package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// driveProgram replaces the bubbletea runtime with a scripted key sequence.
func driveProgram(t *testing.T, keys ...string) {
	t.Helper()
	original := runProgram
	t.Cleanup(func() { runProgram = original })

	runProgram = func(m tea.Model) (tea.Model, error) {
		current := m
		for _, key := range keys {
			var msg tea.Msg
			switch key {
			case "enter":
				msg = tea.KeyMsg{Type: tea.KeyEnter}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "down":
				msg = tea.KeyMsg{Type: tea.KeyDown}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}
			current, _ = current.Update(msg)
		}
		return current, nil
	}
}

func sampleChoices() []Choice {
	return []Choice{
		{Label: "Search by department"},
		{Label: "Search by nationality"},
		{Label: "Search by artist", Detail: "substring match on the artist name"},
	}
}

func TestSelectChoiceEmptyListReturnsBack(t *testing.T) {
	result, err := SelectChoice("Main menu", nil)
	require.NoError(t, err)
	assert.Equal(t, ActionBack, result.Action)
}

func TestSelectChoiceEnterSelectsFirstItem(t *testing.T) {
	driveProgram(t, "enter")

	result, err := SelectChoice("Main menu", sampleChoices())
	require.NoError(t, err)

	assert.Equal(t, ActionSelected, result.Action)
	assert.Equal(t, 0, result.Index)
}

func TestSelectChoiceNavigatesBeforeSelecting(t *testing.T) {
	driveProgram(t, "down", "down", "enter")

	result, err := SelectChoice("Main menu", sampleChoices())
	require.NoError(t, err)

	assert.Equal(t, ActionSelected, result.Action)
	assert.Equal(t, 2, result.Index)
}

func TestSelectChoiceEscGoesBack(t *testing.T) {
	driveProgram(t, "esc")

	result, err := SelectChoice("Main menu", sampleChoices())
	require.NoError(t, err)
	assert.Equal(t, ActionBack, result.Action)
}

func TestSelectChoiceQuit(t *testing.T) {
	driveProgram(t, "q")

	result, err := SelectChoice("Main menu", sampleChoices())
	require.NoError(t, err)
	assert.Equal(t, ActionQuit, result.Action)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "collapsed spaces", truncate("collapsed   spaces", 20))
	assert.Equal(t, "a long de...", truncate("a long detail line here", 12))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestTruncateCutsOnRuneBoundaries(t *testing.T) {
	assert.Equal(t, "Albrecht Dü...", truncate("Albrecht Dürer, printmaker", 14))
	assert.Equal(t, "Dü", truncate("Dürer", 2))
}
