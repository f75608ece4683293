package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"burrow/internal/domain"
	"burrow/internal/textutil"
)

// Screen is what occupies the main area
type Screen int

const (
	ScreenListing Screen = iota
	ScreenDocument
	ScreenImage
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Screen  Screen
	Page    domain.PageInfo
	Entries []domain.DirectoryEntry
	Lines   []string
	Image   string // description of the image on screen

	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	Loading       bool
	LoadingTarget string
	StatusMessage string
	StatusIsError bool

	Prompt    string // label of the active text input, "" when none
	TextInput string // rendered text input
	Form      string // rendered address form, "" when closed

	ShowHelp      bool
	HelpText      string // full help, shown in a popup
	ShortHelpText string // one-line help footer

	ShowHistory   bool
	History       []domain.HistoryItem
	HistoryCursor int
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	entryRender *EntryRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showTypeLabels bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		entryRender: NewEntryRenderer(styles, showTypeLabels),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	innerWidth := termWidth - 4 // Account for main container padding

	content := &strings.Builder{}
	content.WriteString(r.renderTitleLine(state, innerWidth))
	content.WriteString("\n")
	content.WriteString(r.styles.Subtitle.Render(Clip(state.Page.Title, innerWidth)))
	content.WriteString("\n\n")

	switch state.Screen {
	case ScreenDocument:
		content.WriteString(r.renderDocument(state, innerWidth))
	case ScreenImage:
		content.WriteString(r.renderImage(state))
	default:
		content.WriteString(r.renderListing(state, innerWidth))
	}

	footer := r.renderFooter(state, innerWidth)

	// Pad so the footer sits at the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2 // Padding(1, 2)
	if availableLines <= 0 {
		availableLines = 22
	}
	if padding := availableLines - currentLines - strings.Count(footer, "\n") - 1; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main.MaxHeight(max(state.Height, 1))
	finalContent := mainStyle.Render(content.String())

	if state.Form != "" {
		form := r.styles.Title.Render("Go to address") + "\n\n" + state.Form
		return r.popupRender.RenderPopup(finalContent, form, state.Width, state.Height)
	}
	if state.ShowHistory {
		return r.popupRender.RenderPopup(finalContent, r.renderHistory(state), state.Width, state.Height)
	}
	if state.ShowHelp && state.HelpText != "" {
		return r.popupRender.RenderPopup(finalContent, state.HelpText, state.Width, state.Height)
	}
	return finalContent
}

func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	logo := r.styles.Title.Render("burrow")

	right := ""
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		right = r.styles.StatusLoading.Render(fmt.Sprintf("%s Loading %s  (esc to stop)", spinner[frame], textutil.Sanitize(state.LoadingTarget)))
	} else if state.Page.Count > 0 {
		right = r.styles.Dim.Render(state.Page.String())
	}
	if right == "" {
		return logo
	}

	paddingWidth := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + right
	}
	return logo + "  " + right
}

func (r *Renderer) renderListing(state ViewState, width int) string {
	if len(state.Entries) == 0 {
		return r.styles.Dim.Render("This directory is empty.")
	}

	end := len(state.Entries)
	if state.ViewportHeight > 0 {
		end = min(state.ViewportOffset+state.ViewportHeight, end)
	}
	start := min(max(state.ViewportOffset, 0), end)

	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render("↑ (more above)"))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.entryRender.RenderEntry(state.Entries[i], i == state.SelectedIndex, width))
	}
	if end < len(state.Entries) {
		lines = append(lines, r.styles.Scroll.Render("↓ (more below)"))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderDocument(state ViewState, width int) string {
	if len(state.Lines) == 0 {
		return r.styles.Dim.Render("This document is empty.")
	}
	lines := make([]string, len(state.Lines))
	for i, line := range state.Lines {
		lines[i] = Clip(expandTabs(line), width)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderImage(state ViewState) string {
	if state.Image == "" {
		return r.styles.Dim.Render("No image.")
	}
	lines := strings.Split(state.Image, "\n")
	for i, line := range lines {
		lines[i] = textutil.Sanitize(line)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderFooter(state ViewState, width int) string {
	var lines []string
	if state.Prompt != "" {
		lines = append(lines, r.styles.Prompt.Render(state.Prompt)+state.TextInput)
	}
	if state.StatusMessage != "" {
		style := r.styles.Dim
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		lines = append(lines, style.Render(Clip(state.StatusMessage, width)))
	}
	if state.ShortHelpText != "" {
		lines = append(lines, state.ShortHelpText)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderHistory(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("History"))
	b.WriteString("\n\n")
	for i, item := range state.History {
		line := fmt.Sprintf("%2d  %s", i+1, textutil.Sanitize(item.Label()))
		if !item.Home {
			line += r.styles.Dim.Render("  " + textutil.Sanitize(item.Entry.Title()))
		}
		if i == state.HistoryCursor {
			b.WriteString(r.styles.Highlight.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("enter: open  esc: close"))
	return b.String()
}
