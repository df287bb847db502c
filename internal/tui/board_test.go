package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lanes/internal/board"
	"lanes/internal/storage"
)

// fakeStore records saves so tests can see what the TUI wrote out.
type fakeStore struct {
	saved   string
	saveErr error
}

func (f *fakeStore) Load(context.Context) (*board.Kanban, error) {
	return nil, storage.ErrNotFound
}

func (f *fakeStore) Save(_ context.Context, k *board.Kanban) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = k.Render()
	return nil
}

func (f *fakeStore) Location() string { return "test-board.md" }

// createTestBoard builds a board with cards spread over three columns.
func createTestBoard(t *testing.T) *board.Kanban {
	t.Helper()
	k, err := board.Parse("## To Do\n\n- [ ] Task 1\n- [ ] Task 2\n\n## Doing\n\n- [ ] Task 3\n\n## Done\n\n- [x] Task 4\n")
	require.NoError(t, err)
	return k
}

func createTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(context.Background(), createTestBoard(t), &fakeStore{})
	m.width = 120
	m.height = 40
	return m
}

func keyPress(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		if k == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		} else if k == "enter" {
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		model, _ := m.Update(msg)
		m = model.(Model)
	}
	return m
}

func TestColumnNavigation(t *testing.T) {
	m := createTestModel(t)
	assert.Equal(t, 0, m.selectedColumn)

	m = keyPress(t, m, "l")
	assert.Equal(t, 1, m.selectedColumn)

	m = keyPress(t, m, "l", "l", "l")
	assert.Equal(t, 2, m.selectedColumn, "selection must stop at the last column")

	m = keyPress(t, m, "h")
	assert.Equal(t, 1, m.selectedColumn)
}

func TestCardNavigation(t *testing.T) {
	m := createTestModel(t)
	assert.Equal(t, 0, m.selectedCard[0])

	m = keyPress(t, m, "j")
	assert.Equal(t, 1, m.selectedCard[0])

	m = keyPress(t, m, "j")
	assert.Equal(t, 1, m.selectedCard[0], "selection must stop at the last card")

	m = keyPress(t, m, "k", "k")
	assert.Equal(t, 0, m.selectedCard[0])
}

func TestMoveModeRelocatesCard(t *testing.T) {
	m := createTestModel(t)

	// Move "Task 1" from To Do (column 1) to Done (column 3).
	m = keyPress(t, m, "m")
	assert.Equal(t, modeMove, m.mode)

	m = keyPress(t, m, "3")
	assert.Equal(t, modeNormal, m.mode)
	assert.True(t, m.dirty)

	// The moved card keeps its insertion position, which predates Task 4.
	done := m.kanban.CardsIn("Done")
	require.Len(t, done, 2)
	assert.Equal(t, "Task 1", done[0].Title())
	assert.Equal(t, "Task 4", done[1].Title())
	assert.Len(t, m.kanban.CardsIn("To Do"), 1)
}

func TestMoveModeCancel(t *testing.T) {
	m := createTestModel(t)

	m = keyPress(t, m, "m", "esc")
	assert.Equal(t, modeNormal, m.mode)
	assert.False(t, m.dirty)
	assert.Len(t, m.kanban.CardsIn("To Do"), 2)
}

func TestMoveModeIgnoresOutOfRangeColumn(t *testing.T) {
	m := createTestModel(t)

	m = keyPress(t, m, "m", "9")
	assert.Equal(t, modeMove, m.mode, "an out-of-range digit must not leave move mode")
	assert.False(t, m.dirty)
}

func TestAddCard(t *testing.T) {
	m := createTestModel(t)

	m = keyPress(t, m, "a")
	assert.Equal(t, modeAddCard, m.mode)

	m = keyPress(t, m, "New task", "enter")
	assert.Equal(t, modeNormal, m.mode)
	assert.True(t, m.dirty)

	cards := m.kanban.CardsIn("To Do")
	require.Len(t, cards, 3)
	assert.Equal(t, "New task", cards[2].Title())
	assert.Equal(t, board.Incomplete, cards[2].Status())
}

func TestAddCardEmptyInputIsNoOp(t *testing.T) {
	m := createTestModel(t)

	m = keyPress(t, m, "a", "enter")
	assert.Equal(t, modeNormal, m.mode)
	assert.False(t, m.dirty)
	assert.Len(t, m.kanban.CardsIn("To Do"), 2)
}

func TestAddColumn(t *testing.T) {
	m := createTestModel(t)

	m = keyPress(t, m, "A", "Blocked", "enter")
	assert.True(t, m.dirty)
	assert.Equal(t, []string{"To Do", "Doing", "Done", "Blocked"}, m.kanban.Columns())
}

func TestAddCardOnEmptyBoardWantsColumnFirst(t *testing.T) {
	m := NewModel(context.Background(), board.New(), &fakeStore{})
	m.width = 80
	m.height = 24

	m = keyPress(t, m, "a")
	assert.Equal(t, modeNormal, m.mode)
	assert.NotEmpty(t, m.toast)
}

func TestSaveWritesThroughStore(t *testing.T) {
	store := &fakeStore{}
	m := NewModel(context.Background(), createTestBoard(t), store)
	m.dirty = true

	cmd := m.save()
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, savedMsg{}, msg)

	model, _ := m.Update(msg)
	m = model.(Model)
	assert.False(t, m.dirty)
	assert.Contains(t, store.saved, "## To Do")
	assert.Contains(t, store.saved, "- [x] Task 4")
}

func TestSaveErrorKeepsDirty(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	m := NewModel(context.Background(), createTestBoard(t), store)
	m.dirty = true

	msg := m.save()()
	require.IsType(t, saveErrorMsg{}, msg)

	model, _ := m.Update(msg)
	m = model.(Model)
	assert.True(t, m.dirty)
	assert.Contains(t, m.toast, "disk full")
}

func TestWindowResize(t *testing.T) {
	m := createTestModel(t)

	model, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	m = model.(Model)
	assert.Equal(t, 200, m.width)
	assert.Equal(t, 50, m.height)
}

func TestViewDoesNotPanic(t *testing.T) {
	m := NewModel(context.Background(), createTestBoard(t), &fakeStore{})

	// Before any window size arrives, View must fall back to defaults.
	require.NotPanics(t, func() { m.View() })

	m.width = 150
	m.height = 30
	view := m.View()
	assert.Contains(t, view, "To Do")
	assert.Contains(t, view, "Doing")
	assert.Contains(t, view, "Done")
}

func TestViewShowsDirtyIndicator(t *testing.T) {
	m := createTestModel(t)
	assert.NotContains(t, m.View(), "[+]")

	m = keyPress(t, m, "A", "Blocked", "enter")
	assert.Contains(t, m.View(), "[+]")
}

func TestViewEmptyBoard(t *testing.T) {
	m := NewModel(context.Background(), board.New(), &fakeStore{})
	m.width = 100
	m.height = 24

	assert.Contains(t, m.View(), "Press 'A' to add a column")
}
