package board

import "regexp"

// The document grammar is line oriented and order sensitive: an optional
// frontmatter block fenced by --- lines, then any mix of column headings,
// card lines and ignorable text, optionally cut off by a %% trailer that
// swallows the rest of the document.
//
//	document := frontmatter? (column_block | ignored_line)*
//	column_block := "## " text NEWLINE card*
//	card := "- [" status "] " text (date_marker)? (time_marker)?
//	status := "x" | " "
//	date_marker := "@{" YYYY-MM-DD "}"
//	time_marker := "@@{" HH:MM "}"
//	trailing := "%%" .*
const (
	headingMarker    = "## "
	cardMarker       = "- ["
	frontmatterFence = "---"
	trailerMarker    = "%%"
)

var (
	// cardLine captures the status rune and the free text after "] ".
	cardLine = regexp.MustCompile(`^- \[(.)\] (.*)$`)
	// timeAnnotation matches a time annotation with its optional leading
	// space. Time annotations are extracted before date annotations so the
	// "@{" inside "@@{" is never misread as a date.
	timeAnnotation = regexp.MustCompile(` ?@@\{([^}]*)\}`)
	// dateAnnotation matches a date annotation with its optional leading space.
	dateAnnotation = regexp.MustCompile(` ?@\{([^}]*)\}`)
	// dateValue is the shape a date annotation's payload must have.
	dateValue = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	// timeValue is the shape a time annotation's payload must have.
	timeValue = regexp.MustCompile(`^\d{2}:\d{2}$`)
)
