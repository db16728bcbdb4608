package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/multiway/btree"
	"github.com/npillmayer/multiway/validate"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls console output.
type Config struct {
	LineWidth int            // wrap postorder groups at this many en
	Color     bool           // colour status lines
	Context   *uax11.Context // for measuring text width; nil means uax11.LatinContext
}

// Palette colours the parts of a console report.
type Palette struct {
	OK        *color.Color
	Violation *color.Color
	Heading   *color.Color
}

// DefaultPalette returns green for success, red for violations and bold
// headings.
func DefaultPalette() Palette {
	return Palette{
		OK:        color.New(color.FgGreen),
		Violation: color.New(color.FgRed),
		Heading:   color.New(color.Bold),
	}
}

func (p Palette) colored(enable bool) Palette {
	for _, c := range []*color.Color{p.OK, p.Violation, p.Heading} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

var setupGraphemes sync.Once

// Console writes tree and rep to w. rep may be nil if the tree has not been
// validated. If config is nil, ConfigFromTerminal(fd of stdout) is used.
func Console(w io.Writer, tree *btree.Tree, rep *validate.Report, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal(1)
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	palette := DefaultPalette().colored(config.Color)
	cw := &consoleWriter{w: w}

	if tree.IsEmpty() {
		cw.line(palette.Heading.Sprint("B-tree: empty"))
	} else {
		cw.line(palette.Heading.Sprintf("B-tree t=%d: %d keys, height %d", tree.Degree(), tree.Len(), tree.Height()))
		cw.wrapped("postorder:", groupStrings(tree.PostorderKeys()), config)
	}
	if rep != nil {
		writeReport(cw, rep, palette)
	}
	return cw.err
}

func writeReport(cw *consoleWriter, rep *validate.Report, palette Palette) {
	if rep.OK {
		cw.line(palette.OK.Sprintf("ok: all invariants hold (%d nodes, %d leaves)", rep.Nodes, len(rep.Leaves)))
		return
	}
	cw.line(palette.Violation.Sprintf("invalid: %d violations", rep.ViolationCount()))
	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		cw.line(palette.Heading.Sprint(title))
		for _, item := range items {
			cw.line("  " + palette.Violation.Sprint(item))
		}
	}
	section("Nodes violating key count:", stringers(rep.KeyCountViolations))
	if len(rep.DepthViolations) > 0 {
		section(fmt.Sprintf("Leaves at different depths %v:", rep.LeafDepths()), stringers(rep.DepthViolations))
	}
	section("Keys out of range:", stringers(rep.RangeViolations))
	section("Nodes with wrong child count:", stringers(rep.ChildCountViolations))
}

func stringers[T fmt.Stringer](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	return out
}

func groupStrings(groups [][]btree.Key) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = fmt.Sprint(g)
	}
	return out
}

// consoleWriter remembers the first write error.
type consoleWriter struct {
	w   io.Writer
	err error
}

func (cw *consoleWriter) line(s string) {
	if cw.err != nil {
		return
	}
	_, cw.err = io.WriteString(cw.w, s+"\n")
}

// wrapped writes label followed by items, breaking lines before an item which
// would exceed the line width (first fit). Continuation lines are indented by
// the width of label.
func (cw *consoleWriter) wrapped(label string, items []string, config *Config) {
	width := func(s string) int {
		return uax11.StringWidth(grapheme.StringFromString(s), config.Context)
	}
	linewidth := config.LineWidth
	if linewidth <= 0 {
		linewidth = 65
	}
	indent := width(label)
	var b strings.Builder
	b.WriteString(label)
	used, count := indent, 0
	for _, item := range items {
		w := width(item) + 1
		if count > 0 && used+w > linewidth {
			cw.line(b.String())
			b.Reset()
			b.WriteString(strings.Repeat(" ", indent))
			used, count = indent, 0
		}
		b.WriteByte(' ')
		b.WriteString(item)
		used += w
		count++
	}
	cw.line(b.String())
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a console Config.
// It checks whether fd is a terminal, and if so it reads the terminal's width,
// sets Config.LineWidth accordingly and enables colour.
func ConfigFromTerminal(fd int) *Config {
	config := &Config{Context: uax11.LatinContext}
	if term.IsTerminal(fd) {
		config.Color = true
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else if w > 30 {
			config.LineWidth = w - 5
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 65
	}
	tracer().Debugf("report: setting line length to %d en", config.LineWidth)
	return config
}
