package board

import (
	"regexp"
	"strings"
)

// Parse reads a whole board document into a Kanban. Parsing is a single
// left-to-right pass over the lines and is atomic: the first failure
// aborts the parse and no partial board is returned.
func Parse(text string) (*Kanban, error) {
	k := &Kanban{}
	lines := strings.Split(text, "\n")

	start := 0
	if len(lines) > 0 && chomp(lines[0]) == frontmatterFence {
		// Skip the frontmatter block without validating its contents.
		// An unclosed fence swallows the whole document.
		start = len(lines)
		for i := 1; i < len(lines); i++ {
			if chomp(lines[i]) == frontmatterFence {
				start = i + 1
				break
			}
		}
	}

	current := ""
	inColumn := false
	for i := start; i < len(lines); i++ {
		line := chomp(lines[i])
		switch {
		case strings.HasPrefix(line, trailerMarker):
			// Comment trailer: nothing after it is structure.
			return k, nil
		case strings.HasPrefix(line, headingMarker):
			current = strings.TrimSpace(line[len(headingMarker):])
			inColumn = true
			k.AddColumn(current)
		case strings.HasPrefix(line, cardMarker):
			if !inColumn {
				return nil, &ParseError{Line: i + 1, Err: ErrCardBeforeColumn}
			}
			card, err := parseCardLine(line, current, i+1)
			if err != nil {
				return nil, err
			}
			if err := k.AddCard(card); err != nil {
				return nil, &ParseError{Line: i + 1, Err: err}
			}
		}
		// Anything else is skippable: blank lines, prose, unrelated markup.
	}
	return k, nil
}

// parseCardLine turns one card production into a Card owned by column.
func parseCardLine(line, column string, lineNo int) (Card, error) {
	m := cardLine.FindStringSubmatch(line)
	if m == nil {
		return Card{}, &ParseError{Line: lineNo, Expected: `"- [<status>] <title>"`, Err: ErrMalformedLine}
	}
	status, err := ParseStatus(m[1])
	if err != nil {
		return Card{}, &ParseError{Line: lineNo, Err: err}
	}

	text, time, err := extractAnnotation(m[2], timeAnnotation, timeValue, "time annotation @@{HH:MM}", lineNo)
	if err != nil {
		return Card{}, err
	}
	text, date, err := extractAnnotation(text, dateAnnotation, dateValue, "date annotation @{YYYY-MM-DD}", lineNo)
	if err != nil {
		return Card{}, err
	}
	// Whatever annotation syntax survives extraction is unclosed or stray.
	if strings.Contains(text, "@@{") {
		return Card{}, &ParseError{Line: lineNo, Expected: "time annotation @@{HH:MM}", Err: ErrMalformedLine}
	}
	if strings.Contains(text, "@{") {
		return Card{}, &ParseError{Line: lineNo, Expected: "date annotation @{YYYY-MM-DD}", Err: ErrMalformedLine}
	}

	b := NewCardBuilder().Column(column).Status(status).Title(text)
	if date != "" {
		b.Date(date)
	}
	if time != "" {
		b.Time(time)
	}
	card, err := b.Build()
	if err != nil {
		return Card{}, &ParseError{Line: lineNo, Err: err}
	}
	return card, nil
}

// extractAnnotation pulls a single marker out of text, validating the
// shape of its payload. It returns the text with the whole annotation
// (and one leading space, when present) removed, plus the payload.
func extractAnnotation(text string, marker, value *regexp.Regexp, what string, lineNo int) (string, string, error) {
	matches := marker.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text, "", nil
	}
	if len(matches) > 1 {
		return "", "", &ParseError{Line: lineNo, Expected: "at most one " + what, Err: ErrMalformedLine}
	}
	payload := matches[0][1]
	if !value.MatchString(payload) {
		return "", "", &ParseError{Line: lineNo, Expected: what, Err: ErrMalformedLine}
	}
	return strings.Replace(text, matches[0][0], "", 1), payload, nil
}

// chomp drops a trailing carriage return so CRLF documents parse the same
// as LF ones.
func chomp(line string) string {
	return strings.TrimSuffix(line, "\r")
}
