package board

import "strings"

// Render serializes the whole board back to its document form: one
// heading block per column in stored order, each followed by its cards in
// stored order. Frontmatter and trailer blocks are not reproduced.
// Parsing the output reconstructs an equivalent board — same column
// sequence, same cards with per-column order preserved — except that
// cards under a duplicated column name are emitted under every copy of
// it.
func (k *Kanban) Render() string {
	if len(k.columns) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(k.columns))
	for _, col := range k.columns {
		lines := []string{headingMarker + col}
		if cards := k.CardsIn(col); len(cards) > 0 {
			lines = append(lines, "")
			for _, c := range cards {
				lines = append(lines, c.String())
			}
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
