package board

import "fmt"

// Card is one task on the board. It is a plain comparable value: equality
// over all five fields is both the comparison and the key used to address
// a card for mutation. The column field is a name reference into the
// owning board's column list, not a handle on any column entity.
type Card struct {
	column string
	status Status
	title  string
	date   string // optional YYYY-MM-DD, empty when absent
	time   string // optional HH:MM, empty when absent
}

// Column returns the name of the column the card currently belongs to.
func (c Card) Column() string { return c.column }

// Status returns the card's completion marker.
func (c Card) Status() Status { return c.status }

// Title returns the card's title text.
func (c Card) Title() string { return c.title }

// Date returns the card's date annotation, or "" if it has none.
func (c Card) Date() string { return c.date }

// Time returns the card's time annotation, or "" if it has none.
func (c Card) Time() string { return c.time }

// MoveTo points the card at a new column. It does not check that the
// column exists; that is the owning Kanban's job.
func (c *Card) MoveTo(column string) {
	c.column = column
}

// Rename returns a copy of the card with a new title. The receiver is
// unchanged.
func (c Card) Rename(title string) Card {
	c.title = title
	return c
}

// String renders the card in its one-line document form:
//
//	- [<status>] <title> @{<date>} @@{<time>}
//
// with the date and time suffixes emitted only when set, each preceded by
// exactly one space.
func (c Card) String() string {
	var date, time string
	if c.date != "" {
		date = fmt.Sprintf(" @{%s}", c.date)
	}
	if c.time != "" {
		time = fmt.Sprintf(" @@{%s}", c.time)
	}
	return fmt.Sprintf("- [%s] %s%s%s", c.status, c.title, date, time)
}

// CardBuilder assembles a Card field by field. Column and title are
// required; status defaults to Incomplete; date and time stay absent
// unless set. Setters return the builder for chaining.
type CardBuilder struct {
	column *string
	status Status
	title  *string
	date   string
	time   string
}

// NewCardBuilder returns an empty builder.
func NewCardBuilder() *CardBuilder {
	return &CardBuilder{}
}

// Column sets the name of the column the card will belong to.
func (b *CardBuilder) Column(name string) *CardBuilder {
	b.column = &name
	return b
}

// Status sets the card's completion marker.
func (b *CardBuilder) Status(status Status) *CardBuilder {
	b.status = status
	return b
}

// Title sets the card's title text.
func (b *CardBuilder) Title(title string) *CardBuilder {
	b.title = &title
	return b
}

// Date sets the card's date annotation (YYYY-MM-DD).
func (b *CardBuilder) Date(date string) *CardBuilder {
	b.date = date
	return b
}

// Time sets the card's time annotation (HH:MM).
func (b *CardBuilder) Time(time string) *CardBuilder {
	b.time = time
	return b
}

// Build validates the collected fields and returns the finished card.
// It fails with ErrMissingField, naming the field, if no column or no
// title was set.
func (b *CardBuilder) Build() (Card, error) {
	if b.column == nil {
		return Card{}, fmt.Errorf("%w: column", ErrMissingField)
	}
	if b.title == nil {
		return Card{}, fmt.Errorf("%w: title", ErrMissingField)
	}
	return Card{
		column: *b.column,
		status: b.status,
		title:  *b.title,
		date:   b.date,
		time:   b.time,
	}, nil
}
