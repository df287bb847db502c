// Package tui provides the interactive board: one Bubble Tea model over
// one Kanban, saved back through the storage layer on demand.
package tui

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/pkg/browser"

	"lanes/internal/board"
	"lanes/internal/storage"
)

// Layout constants
const (
	minColumnWidth = 20
	maxColumnWidth = 35
	headerLines    = 2 // title line + hint line
)

// urlPattern finds the first link embedded in a card title.
var urlPattern = regexp.MustCompile(`https?://\S+`)

// mode is the input mode the board is in.
type mode int

const (
	modeNormal mode = iota
	modeMove
	modeAddCard
	modeAddColumn
)

// Model is the interactive board view. It owns the Kanban for the
// duration of the session and tracks whether it has unsaved changes.
type Model struct {
	kanban *board.Kanban
	store  storage.Store
	ctx    context.Context

	keymap KeyMap
	help   HelpModel
	input  textinput.Model

	mode           mode
	showHelp       bool
	selectedColumn int
	columnOffset   int         // first visible column index (horizontal carousel)
	selectedCard   map[int]int // column index -> selected card index
	scrollOffset   map[int]int // column index -> vertical scroll offset

	width  int
	height int
	dirty  bool
	toast  string // transient status/error message
}

// NewModel creates the board model over a loaded Kanban.
func NewModel(ctx context.Context, k *board.Kanban, store storage.Store) Model {
	ti := textinput.New()
	ti.Prompt = "> "

	return Model{
		kanban:       k,
		store:        store,
		ctx:          ctx,
		keymap:       DefaultKeyMap(),
		help:         NewHelpModel(DefaultKeyMap()),
		input:        ti,
		selectedCard: make(map[int]int),
		scrollOffset: make(map[int]int),
	}
}

// Init requests the window size so the first render can lay out columns.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case savedMsg:
		m.dirty = false
		m.toast = "Saved to " + m.store.Location()
		return m, nil

	case saveErrorMsg:
		m.toast = errorStyle.Render(fmt.Sprintf("Save failed: %v", msg.err))
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Help overlay
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "q" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	// Text input modes (add card / add column)
	if m.mode == modeAddCard || m.mode == modeAddColumn {
		return m.handleInputMode(msg)
	}

	// Move mode
	if m.mode == modeMove {
		return m.handleMoveMode(msg)
	}

	// Normal navigation
	m.toast = ""
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "h", "left":
		if m.selectedColumn > 0 {
			m.selectedColumn--
			(&m).adjustColumnScroll()
		}
	case "l", "right":
		if m.selectedColumn < len(m.kanban.Columns())-1 {
			m.selectedColumn++
			(&m).adjustColumnScroll()
		}
	case "j", "down":
		(&m).moveCardSelection(1)
	case "k", "up":
		(&m).moveCardSelection(-1)
	case "g":
		(&m).jumpToCard(0)
	case "G":
		(&m).jumpToCard(-1)
	case "m":
		if _, ok := m.selectedCardValue(); ok {
			m.mode = modeMove
		}
	case "a":
		if len(m.kanban.Columns()) == 0 {
			m.toast = errorStyle.Render("Add a column first (A)")
			return m, nil
		}
		m.mode = modeAddCard
		m.input.Placeholder = "Card title..."
		m.input.SetValue("")
		m.input.Focus()
	case "A":
		m.mode = modeAddColumn
		m.input.Placeholder = "Column name..."
		m.input.SetValue("")
		m.input.Focus()
	case "o":
		if card, ok := m.selectedCardValue(); ok {
			if url := urlPattern.FindString(card.Title()); url != "" {
				_ = browser.OpenURL(url)
			}
		}
	case "s":
		return m, m.save()
	}

	return m, nil
}

// handleInputMode handles key presses while the text input is focused.
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		entering := m.mode
		m.mode = modeNormal
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		if entering == modeAddColumn {
			m.kanban.AddColumn(value)
			m.dirty = true
			return m, nil
		}
		column := m.kanban.Columns()[m.selectedColumn]
		card, err := board.NewCardBuilder().Column(column).Title(value).Build()
		if err == nil {
			err = m.kanban.AddCard(card)
		}
		if err != nil {
			m.toast = errorStyle.Render(fmt.Sprintf("Add failed: %v", err))
			return m, nil
		}
		m.dirty = true
		(&m).jumpToCard(-1)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// handleMoveMode handles key presses in move mode
func (m Model) handleMoveMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeNormal
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.Runes[0] - '1')
		columns := m.kanban.Columns()
		if idx < 0 || idx >= len(columns) {
			return m, nil
		}
		m.mode = modeNormal
		card, ok := m.selectedCardValue()
		if !ok {
			return m, nil
		}
		if err := m.kanban.MoveCard(columns[idx], card); err != nil {
			m.toast = errorStyle.Render(fmt.Sprintf("Move failed: %v", err))
			return m, nil
		}
		m.dirty = true
		(&m).clampSelection()
	}
	return m, nil
}

// save writes the board through the storage layer.
func (m Model) save() tea.Cmd {
	return func() tea.Msg {
		if err := m.store.Save(m.ctx, m.kanban); err != nil {
			return saveErrorMsg{err: err}
		}
		return savedMsg{}
	}
}

// View renders the board - fills entire terminal exactly
func (m Model) View() string {
	width := m.width
	height := m.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	var sections []string
	sections = append(sections, m.renderHeader(width))
	sections = append(sections, m.renderHintLine(width))

	if m.mode == modeAddCard || m.mode == modeAddColumn {
		sections = append(sections, m.input.View())
	}
	if m.mode == modeMove {
		moveBar := moveModeStyle.Render("MOVE") + " Press 1-9 to select target column, ESC to cancel"
		sections = append(sections, moveBar)
	}

	boardHeight := height - headerLines
	if m.mode != modeNormal {
		boardHeight--
	}
	if boardHeight < 5 {
		boardHeight = 5
	}

	var mainContent string
	columns := m.kanban.Columns()
	switch {
	case m.showHelp:
		helpLines := strings.Split(m.help.View(width), "\n")
		if len(helpLines) > boardHeight {
			helpLines = helpLines[:boardHeight]
		}
		mainContent = strings.Join(helpLines, "\n")
	case len(columns) == 0:
		mainContent = lipgloss.Place(width, boardHeight, lipgloss.Center, lipgloss.Center,
			"Empty board. Press 'A' to add a column.")
	default:
		mainContent = m.renderBoard(width, boardHeight)
	}
	sections = append(sections, mainContent)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line: board location left, state right.
func (m Model) renderHeader(width int) string {
	title := m.store.Location()

	var statusParts []string
	if m.dirty {
		statusParts = append(statusParts, dirtyStyle.Render("[+]"))
	}
	statusParts = append(statusParts, fmt.Sprintf("%d cards", len(m.kanban.Cards())))
	statusParts = append(statusParts, "[?]help")
	status := strings.Join(statusParts, " | ")

	padding := width - len(title) - lipgloss.Width(status) - 2
	if padding < 1 {
		padding = 1
	}
	return titleStyle.Render(title) + strings.Repeat(" ", padding) + dimStyle.Render(status)
}

// renderHintLine renders navigation hints and position info, or the
// current toast when one is pending.
func (m Model) renderHintLine(width int) string {
	left := "h/l:col j/k:card m:move a:add A:column s:save"

	right := m.toast
	columns := m.kanban.Columns()
	if right == "" && len(columns) > 0 {
		cards := m.kanban.CardsIn(columns[m.selectedColumn])
		right = fmt.Sprintf("col %d/%d", m.selectedColumn+1, len(columns))
		if len(cards) > 0 {
			right = fmt.Sprintf("%s | card %d/%d", right, m.selectedCard[m.selectedColumn]+1, len(cards))
		}
	}

	padding := width - len(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}
	return dimStyle.Render(left) + strings.Repeat(" ", padding) + right
}

// renderBoard renders the kanban columns within the given dimensions,
// with a horizontal carousel when columns overflow.
func (m Model) renderBoard(totalWidth, totalHeight int) string {
	columns := m.kanban.Columns()
	numCols := len(columns)

	// lipgloss borders add 2 lines to the content height.
	colContentHeight := totalHeight - 2
	if colContentHeight < 3 {
		colContentHeight = 3
	}

	visibleCols := totalWidth / minColumnWidth
	if visibleCols < 1 {
		visibleCols = 1
	}
	if visibleCols > numCols {
		visibleCols = numCols
	}

	colWidth := totalWidth / visibleCols
	if colWidth > maxColumnWidth {
		colWidth = maxColumnWidth
	}
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}

	// Content width inside the column: border (2) + padding (2).
	innerWidth := colWidth - 4
	if innerWidth < 10 {
		innerWidth = 10
	}

	startCol := m.columnOffset
	endCol := startCol + visibleCols
	if endCol > numCols {
		endCol = numCols
		startCol = endCol - visibleCols
		if startCol < 0 {
			startCol = 0
		}
	}

	columnViews := make([]string, 0, visibleCols+2)
	if startCol > 0 {
		columnViews = append(columnViews, m.renderCarouselIndicator("◀", colContentHeight))
	}
	for i := startCol; i < endCol; i++ {
		columnViews = append(columnViews, m.renderColumn(i, columns[i], colWidth, colContentHeight, innerWidth))
	}
	if endCol < numCols {
		columnViews = append(columnViews, m.renderCarouselIndicator("▶", colContentHeight))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnViews...)
}

func (m Model) renderCarouselIndicator(glyph string, contentHeight int) string {
	return lipgloss.NewStyle().
		Width(2).
		Height(contentHeight+2).
		Foreground(lipgloss.Color("205")).
		Align(lipgloss.Center, lipgloss.Center).
		Render(glyph)
}

// renderColumn renders one column. innerHeight is the content area
// inside the border.
func (m Model) renderColumn(idx int, name string, width, innerHeight, innerWidth int) string {
	cards := m.kanban.CardsIn(name)
	selected := idx == m.selectedColumn

	// Header: [N] Name (count)
	headerText := fmt.Sprintf("[%d] %s (%d)", idx+1, name, len(cards))
	headerText = truncate.StringWithTail(headerText, uint(innerWidth), "…")

	scrollOffset := m.scrollOffset[idx]
	selectedIdx := m.selectedCard[idx]

	cardSlots := innerHeight - 1 // header line
	if cardSlots < 1 {
		cardSlots = 1
	}

	needUpIndicator := scrollOffset > 0
	availableSlots := cardSlots
	if needUpIndicator {
		availableSlots--
	}
	endIdx := scrollOffset + availableSlots
	needDownIndicator := endIdx < len(cards)
	if needDownIndicator {
		availableSlots--
		endIdx = scrollOffset + availableSlots
	}
	if endIdx > len(cards) {
		endIdx = len(cards)
	}

	var lines []string
	lines = append(lines, columnHeaderStyle.Render(headerText))
	if needUpIndicator {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("↑ %d more", scrollOffset)))
	}
	for i := scrollOffset; i < endIdx; i++ {
		cardText := truncate.StringWithTail(cards[i].String(), uint(innerWidth-2), "…")
		if selected && i == selectedIdx {
			lines = append(lines, selectedCardStyle.Render("> "+cardText))
		} else {
			lines = append(lines, cardStyle.Render("  "+cardText))
		}
	}
	if remaining := len(cards) - endIdx; needDownIndicator && remaining > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("↓ %d more", remaining)))
	}
	if len(cards) == 0 {
		lines = append(lines, dimStyle.Render("(empty)"))
	}

	borderColor := lipgloss.Color("240")
	if selected {
		borderColor = lipgloss.Color("205")
	}
	colStyle := lipgloss.NewStyle().
		Width(width - 2).
		Height(innerHeight).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor)

	return colStyle.Render(strings.Join(lines, "\n"))
}

// moveCardSelection moves the card selection up or down by delta.
func (m *Model) moveCardSelection(delta int) {
	columns := m.kanban.Columns()
	if len(columns) == 0 {
		return
	}
	cards := m.kanban.CardsIn(columns[m.selectedColumn])
	if len(cards) == 0 {
		return
	}

	newIdx := m.selectedCard[m.selectedColumn] + delta
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(cards) {
		newIdx = len(cards) - 1
	}
	m.selectedCard[m.selectedColumn] = newIdx
	m.adjustScroll()
}

// jumpToCard jumps to a specific card index. Use -1 to jump to the last card.
func (m *Model) jumpToCard(idx int) {
	columns := m.kanban.Columns()
	if len(columns) == 0 {
		return
	}
	cards := m.kanban.CardsIn(columns[m.selectedColumn])
	if len(cards) == 0 {
		return
	}
	if idx < 0 || idx >= len(cards) {
		idx = len(cards) - 1
	}
	m.selectedCard[m.selectedColumn] = idx
	m.adjustScroll()
}

// clampSelection keeps every column's selection inside its card list
// after a mutation shrank one.
func (m *Model) clampSelection() {
	for idx, name := range m.kanban.Columns() {
		n := len(m.kanban.CardsIn(name))
		if m.selectedCard[idx] >= n {
			if n > 0 {
				m.selectedCard[idx] = n - 1
			} else {
				m.selectedCard[idx] = 0
			}
		}
	}
}

// adjustScroll keeps the selected card visible.
func (m *Model) adjustScroll() {
	idx := m.selectedColumn
	selectedIdx := m.selectedCard[idx]
	scrollOffset := m.scrollOffset[idx]

	visibleCards := m.height - headerLines - 3 // borders + column header
	if visibleCards < 3 {
		visibleCards = 3
	}

	if selectedIdx < scrollOffset {
		m.scrollOffset[idx] = selectedIdx
	}
	if selectedIdx >= scrollOffset+visibleCards {
		m.scrollOffset[idx] = selectedIdx - visibleCards + 1
	}
}

// adjustColumnScroll keeps the selected column visible in the carousel.
func (m *Model) adjustColumnScroll() {
	numCols := len(m.kanban.Columns())
	if numCols == 0 || m.width == 0 {
		return
	}

	visibleCols := m.width / minColumnWidth
	if visibleCols < 1 {
		visibleCols = 1
	}
	if visibleCols > numCols {
		visibleCols = numCols
	}

	if m.selectedColumn < m.columnOffset {
		m.columnOffset = m.selectedColumn
	}
	if m.selectedColumn >= m.columnOffset+visibleCols {
		m.columnOffset = m.selectedColumn - visibleCols + 1
	}
}

// selectedCardValue returns the card under the cursor, if any.
func (m Model) selectedCardValue() (board.Card, bool) {
	columns := m.kanban.Columns()
	if len(columns) == 0 {
		return board.Card{}, false
	}
	cards := m.kanban.CardsIn(columns[m.selectedColumn])
	if len(cards) == 0 {
		return board.Card{}, false
	}
	idx := m.selectedCard[m.selectedColumn]
	if idx >= len(cards) {
		idx = 0
	}
	return cards[idx], true
}

// Message types
type (
	savedMsg     struct{}
	saveErrorMsg struct{ err error }
)
