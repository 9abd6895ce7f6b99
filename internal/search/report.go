package search

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/fatih/color"
)

// Line is one matching line of a file.
type Line struct {
	// Row is the zero-based line number
	Row int
	// Column is the zero-based rune offset of the first occurrence
	Column int
	// Length is the match length in runes
	Length int
	// Text is the original line without its terminator
	Text string
}

// record renders the line in positional form: "<row>:<column> <text>".
func (l Line) record() string {
	return strconv.Itoa(l.Row) + ":" + strconv.Itoa(l.Column) + " " + l.Text
}

// MatchReport holds the matching lines of one file, in source order.
// Files without matches never produce a report.
type MatchReport struct {
	Path  string
	Lines []Line
}

// ReportMode selects how matched lines are rendered.
type ReportMode int

const (
	// ModeSimple prints the raw text of each matched line
	ModeSimple ReportMode = iota
	// ModePositional prints "<row>:<column> <text>" for each matched line
	ModePositional
)

// String returns the string representation of ReportMode.
func (m ReportMode) String() string {
	switch m {
	case ModeSimple:
		return "simple"
	case ModePositional:
		return "positional"
	default:
		return "unknown"
	}
}

// records renders the report's lines in the given mode, without the path.
func (r *MatchReport) records(mode ReportMode) []string {
	records := make([]string, 0, len(r.Lines))
	for _, l := range r.Lines {
		if mode == ModePositional {
			records = append(records, l.record())
		} else {
			records = append(records, l.Text)
		}
	}
	return records
}

// Sink receives match reports. Implementations must be safe for concurrent use.
type Sink interface {
	Print(report *MatchReport) error
}

// Printer writes match reports to an io.Writer.
// Each report (path line followed by every record) is rendered into a
// buffer and written with a single Write while holding the lock, so reports
// from concurrent scans never interleave.
type Printer struct {
	mu     sync.Mutex
	writer io.Writer
	mode   ReportMode

	path     *color.Color
	position *color.Color
	match    *color.Color
}

// NewPrinter creates a Printer. When useColor is true the path is bold
// magenta, positions green and the matched text bold red.
func NewPrinter(w io.Writer, mode ReportMode, useColor bool) *Printer {
	p := &Printer{
		writer:   w,
		mode:     mode,
		path:     color.New(color.FgMagenta, color.Bold),
		position: color.New(color.FgGreen),
		match:    color.New(color.FgRed, color.Bold),
	}

	for _, c := range []*color.Color{p.path, p.position, p.match} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Print writes one report. Reports without lines are ignored.
func (p *Printer) Print(report *MatchReport) error {
	if report == nil || len(report.Lines) == 0 {
		return nil
	}

	var buf bytes.Buffer
	buf.WriteString(p.path.Sprint(report.Path))
	buf.WriteByte('\n')

	for _, l := range report.Lines {
		if p.mode == ModePositional {
			buf.WriteString(p.position.Sprintf("%d:%d", l.Row, l.Column))
			buf.WriteByte(' ')
		}
		buf.WriteString(p.highlight(l))
		buf.WriteByte('\n')
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := p.writer.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report for %s: %w", report.Path, err)
	}
	return nil
}

// highlight colors the first occurrence in the line text.
// Column and Length are rune offsets, valid in the original text.
func (p *Printer) highlight(l Line) string {
	if l.Length == 0 {
		return l.Text
	}

	runes := []rune(l.Text)
	if l.Column < 0 || l.Column+l.Length > len(runes) {
		return l.Text
	}

	before := string(runes[:l.Column])
	hit := string(runes[l.Column : l.Column+l.Length])
	after := string(runes[l.Column+l.Length:])

	return before + p.match.Sprint(hit) + after
}
