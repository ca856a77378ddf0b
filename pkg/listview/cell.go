package listview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manjunathc23/zeta/pkg/flickr"
	"github.com/manjunathc23/zeta/pkg/home"
)

// Styles holds the lipgloss styles used by Cell.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the styles used on a color terminal.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Section:  lipgloss.NewStyle().Reverse(true).Bold(true),
		Footer:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("11")),
	}
}

// PlainStyles returns styles that add no escape sequences.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Header: plain, Title: plain, Subtitle: plain, Section: plain, Footer: plain}
}

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellHeader
	cellImage
	cellSection
	cellFooter
)

// Cell is a terminal view for the home screen. Every Bind call replaces the
// previous content, so a cell can be rebound to any slot.
type Cell struct {
	styles   Styles
	kind     cellKind
	title    string
	subtitle string
	onClick  func()
}

// NewCell returns an empty cell.
func NewCell(styles Styles) *Cell {
	return &Cell{styles: styles}
}

func (c *Cell) reset(kind cellKind) {
	c.kind = kind
	c.title = ""
	c.subtitle = ""
	c.onClick = nil
}

// BindHeader shows the list title above the photo count.
func (c *Cell) BindHeader(title string, count int) {
	c.reset(cellHeader)
	c.title = title
	c.subtitle = fmt.Sprintf("%d photos", count)
}

// BindFooter shows the loading or retry message. onClick, when set, runs on
// Click.
func (c *Cell) BindFooter(state home.FooterState, onClick func()) {
	c.reset(cellFooter)
	c.onClick = onClick
	switch state {
	case home.FooterProgress:
		c.title = "Loading more..."
	case home.FooterRetry:
		c.title = "Couldn't load more photos. Click to retry."
	}
}

// BindImage shows the image title, or its id when untitled, above the
// author and tags.
func (c *Cell) BindImage(img flickr.Image, onClick func()) {
	c.reset(cellImage)
	c.title = img.Title
	if !img.HasTitle() {
		c.title = "(untitled " + img.ID + ")"
	}
	var meta []string
	if img.Author != "" {
		meta = append(meta, "by "+img.Author)
	}
	if len(img.Tags) > 0 {
		meta = append(meta, "#"+strings.Join(img.Tags, " #"))
	}
	c.subtitle = strings.Join(meta, "  ")
	c.onClick = onClick
}

// BindSection shows a sticky section heading.
func (c *Cell) BindSection(title string) {
	c.reset(cellSection)
	c.title = title
}

// Click invokes the bound click handler.
func (c *Cell) Click() bool {
	if c.onClick == nil {
		return false
	}
	c.onClick()
	return true
}

// Lines renders the cell: a title row followed by a subtitle row.
func (c *Cell) Lines(width, height int) []string {
	if height <= 0 {
		return nil
	}
	var titleStyle, subStyle lipgloss.Style
	switch c.kind {
	case cellHeader:
		titleStyle, subStyle = c.styles.Header, c.styles.Subtitle
	case cellSection:
		titleStyle, subStyle = c.styles.Section, c.styles.Subtitle
	case cellFooter:
		titleStyle, subStyle = c.styles.Footer, c.styles.Subtitle
	default:
		titleStyle, subStyle = c.styles.Title, c.styles.Subtitle
	}

	lines := []string{titleStyle.Render(fit(c.title, width))}
	if height > 1 {
		lines = append(lines, subStyle.Render(fit(c.subtitle, width)))
	}
	return lines
}

// fit truncates s to width cells, marking the cut with an ellipsis, and pads
// it with spaces to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		var sb strings.Builder
		used := 0
		for _, r := range s {
			w := lipgloss.Width(string(r))
			if used+w > width-1 {
				break
			}
			sb.WriteRune(r)
			used += w
		}
		sb.WriteString("…")
		s = sb.String()
	}
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

var _ home.View = (*Cell)(nil)
