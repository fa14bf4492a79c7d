package quoter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// TableOptions controls [WriteTable]. The zero value renders a rounded
// table without a title or width limit.
type TableOptions struct {
	Border BorderStyle
	// Title is centered above the columns. Ignored with BorderNone.
	Title string
	// MaxTextWidth truncates the Text column with "..." when positive.
	MaxTextWidth int
}

var borderNames = map[BorderStyle]string{
	BorderRounded: "rounded",
	BorderNone:    "none",
	BorderASCII:   "ascii",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
}

func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// MarshalText implements [encoding.TextMarshaler].
func (b BorderStyle) MarshalText() ([]byte, error) {
	if _, ok := borderNames[b]; !ok {
		return nil, fmt.Errorf("%w: border style %d", ErrInvalidArgument, int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (b *BorderStyle) UnmarshalText(text []byte) error {
	for style, name := range borderNames {
		if name == string(text) {
			*b = style
			return nil
		}
	}
	return fmt.Errorf("%w: border style %q", ErrInvalidArgument, text)
}

// rule is one horizontal line: its left end, the joint between columns
// and its right end.
type rule struct{ left, joint, right string }

type border struct {
	top, middle, bottom rule
	fill, bar           string
}

// newBorder reads glyphs row by row: the three top glyphs, the three
// header separator glyphs, the three bottom glyphs, then the horizontal
// and vertical strokes.
func newBorder(glyphs string) border {
	g := strings.Split(glyphs, "")
	return border{
		top:    rule{g[0], g[1], g[2]},
		middle: rule{g[3], g[4], g[5]},
		bottom: rule{g[6], g[7], g[8]},
		fill:   g[9],
		bar:    g[10],
	}
}

var borders = map[BorderStyle]border{
	BorderRounded: newBorder("╭┬╮├┼┤╰┴╯─│"),
	BorderASCII:   newBorder("+++++++++-|"),
	BorderHeavy:   newBorder("┏┳┓┣╋┫┗┻┛━┃"),
	BorderDouble:  newBorder("╔╦╗╠╬╣╚╩╝═║"),
}

// sectionAligns matches sectionHeader.
var sectionAligns = []Alignment{AlignRight, AlignLeft, AlignRight, AlignLeft, AlignLeft, AlignLeft}

const textColumn = 4

var cellEscaper = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

// visibleRow escapes line breaks and tabs so a cell stays on one line.
func visibleRow(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = cellEscaper.Replace(cell)
	}
	return out
}

// WriteTable renders sections as a text table.
func WriteTable(w io.Writer, opts TableOptions, sections ...Section) error {
	rows := make([][]string, len(sections))
	for i, s := range sections {
		rows[i] = visibleRow(s.row(i))
	}
	widths := computeWidths(sectionHeader, rows)
	if opts.MaxTextWidth > 0 && widths[textColumn] > opts.MaxTextWidth {
		widths[textColumn] = opts.MaxTextWidth
	}

	var lines []string
	if opts.Border == BorderNone {
		lines = plainTable(sectionHeader, rows, widths, sectionAligns)
	} else {
		b, ok := borders[opts.Border]
		if !ok {
			return fmt.Errorf("%w: border style %d", ErrInvalidArgument, int(opts.Border))
		}
		lines = b.table(opts.Title, sectionHeader, rows, widths, sectionAligns)
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// plainTable lays out columns two spaces apart under a dashed rule.
func plainTable(header []string, rows [][]string, widths []int, aligns []Alignment) []string {
	line := func(cells []string) string {
		parts := make([]string, len(widths))
		for i, width := range widths {
			parts[i] = formatTableCell(cells[i], width, aligns[i])
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}
	dashes := make([]string, len(widths))
	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}
	lines := []string{line(header), strings.Join(dashes, "  ")}
	for _, row := range rows {
		lines = append(lines, line(row))
	}
	return lines
}

func (b border) table(title string, header []string, rows [][]string, widths []int, aligns []Alignment) []string {
	var lines []string
	if title != "" {
		top := b.rule(widths, rule{b.top.left, b.fill, b.top.right})
		inner := runewidth.StringWidth(top) - 4
		title = alignCell(runewidth.Truncate(title, inner, "..."), inner, AlignCenter)
		lines = append(lines,
			top,
			b.bar+" "+title+" "+b.bar,
			b.rule(widths, rule{b.middle.left, b.top.joint, b.middle.right}),
		)
	} else {
		lines = append(lines, b.rule(widths, b.top))
	}
	lines = append(lines, b.row(header, widths, aligns), b.rule(widths, b.middle))
	for _, row := range rows {
		lines = append(lines, b.row(row, widths, aligns))
	}
	return append(lines, b.rule(widths, b.bottom))
}

func (b border) rule(widths []int, r rule) string {
	segs := make([]string, len(widths))
	for i, width := range widths {
		segs[i] = strings.Repeat(b.fill, width+2)
	}
	return r.left + strings.Join(segs, r.joint) + r.right
}

func (b border) row(cells []string, widths []int, aligns []Alignment) string {
	segs := make([]string, len(widths))
	for i, width := range widths {
		segs[i] = " " + formatTableCell(cells[i], width, aligns[i]) + " "
	}
	return b.bar + strings.Join(segs, b.bar) + b.bar
}

// formatTableCell truncates s to width, with "..." when there is room for
// it, and pads it.
func formatTableCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		tail := "..."
		if width <= len(tail) {
			tail = ""
		}
		s = runewidth.Truncate(s, width, tail)
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := 0
	switch align {
	case AlignRight:
		left = pad
	case AlignCenter:
		left = pad / 2
	}
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
