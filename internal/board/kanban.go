// Package board implements the markdown kanban document model: the card
// and column entities, the aggregate that holds them, and the parser and
// serializer for the board's text form.
package board

import "fmt"

// Kanban is the aggregate root: an ordered list of column names plus the
// cards that reference them. Columns keep document order and may repeat;
// cards keep insertion order. A card's column reference is validated when
// the card is added, not maintained afterwards.
//
// A Kanban is a plain in-memory value with no locking of its own; callers
// mutating one from several goroutines must serialize access themselves.
type Kanban struct {
	columns []string
	cards   []Card
}

// New creates a board with the given columns and no cards.
func New(columns ...string) *Kanban {
	k := &Kanban{}
	k.columns = append(k.columns, columns...)
	return k
}

// AddColumn appends a column to the end of the board. Duplicate names are
// permitted; the new column immediately becomes a valid target for cards.
func (k *Kanban) AddColumn(name string) {
	k.columns = append(k.columns, name)
}

// AddCard appends a card to the board. It fails with ErrColumnNotFound,
// leaving the board unchanged, if the card's column is not currently on
// the board.
func (k *Kanban) AddCard(card Card) error {
	if !k.HasColumn(card.column) {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, card.column)
	}
	k.cards = append(k.cards, card)
	return nil
}

// MoveCard points every card structurally equal to card at the target
// column. Duplicates of the same value move together; zero matches is a
// successful no-op. It fails with ErrColumnNotFound, changing nothing, if
// the target is not on the board.
func (k *Kanban) MoveCard(target string, card Card) error {
	if !k.HasColumn(target) {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, target)
	}
	for i := range k.cards {
		if k.cards[i] == card {
			k.cards[i].MoveTo(target)
		}
	}
	return nil
}

// HasColumn reports whether a column with the given name is on the board.
func (k *Kanban) HasColumn(name string) bool {
	for _, c := range k.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Columns returns a copy of the board's column names in order.
func (k *Kanban) Columns() []string {
	out := make([]string, len(k.columns))
	copy(out, k.columns)
	return out
}

// Cards returns a copy of the board's cards in insertion order.
func (k *Kanban) Cards() []Card {
	out := make([]Card, len(k.cards))
	copy(out, k.cards)
	return out
}

// CardsIn returns the cards belonging to the named column, in insertion
// order. An unknown column yields an empty result, not an error.
func (k *Kanban) CardsIn(column string) []Card {
	var out []Card
	for _, c := range k.cards {
		if c.column == column {
			out = append(out, c)
		}
	}
	return out
}
