package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"burrow/internal/domain"
	"burrow/internal/gopher"
	"burrow/internal/textutil"
)

// labelWidth fits the widest registry label, "[???]"
const labelWidth = 5

// EntryRenderer renders listing rows
type EntryRenderer struct {
	styles         *Styles
	showTypeLabels bool
}

// NewEntryRenderer creates a new entry renderer
func NewEntryRenderer(styles *Styles, showTypeLabels bool) *EntryRenderer {
	return &EntryRenderer{
		styles:         styles,
		showTypeLabels: showTypeLabels,
	}
}

// RenderEntry renders one listing row clipped to width columns
func (er *EntryRenderer) RenderEntry(entry domain.DirectoryEntry, selected bool, width int) string {
	info := gopher.Classify(entry.Type)

	label := ""
	if er.showTypeLabels {
		label = runewidth.FillRight(info.Label, labelWidth) + " "
	}
	text := Clip(expandTabs(entry.DisplayText), width-runewidth.StringWidth(label)-2)

	var style lipgloss.Style
	switch info.Category {
	case gopher.CategoryInfo:
		style = er.styles.Info
	case gopher.CategoryError:
		style = er.styles.StatusError
	case gopher.CategoryUnsupported, gopher.CategoryBinary:
		if info.Navigable() {
			style = er.styles.Link
		} else {
			style = er.styles.Unsupported
		}
	default:
		style = er.styles.Link
	}
	if info.Action == gopher.ActionOpenExternal {
		style = style.Underline(true)
	}

	cursor := "  "
	if selected {
		cursor = er.styles.Highlight.Render("> ")
		style = style.Inherit(er.styles.SelectionBg)
	}
	return cursor + er.styles.Label.Render(label) + style.Render(text)
}

// Clip sanitizes s and truncates it to width display columns, marking the cut with an
// ellipsis
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(textutil.Sanitize(s), width, "…")
}

// expandTabs turns tabs into spaces so that clipping measures what the terminal shows
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := 8 - col%8
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
