package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"burrow/internal/textutil"
)

// PagerOps shows whole documents in ov, outside the page-by-page view
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowDocument pages through a document's lines
func (p *PagerOps) ShowDocument(title string, lines []string) error {
	var b strings.Builder
	if title != "" {
		b.WriteString(textutil.Sanitize(title))
		b.WriteString("\n\n")
	}
	for _, line := range lines {
		b.WriteString(textutil.Sanitize(line))
		b.WriteByte('\n')
	}
	return p.run(strings.NewReader(b.String()))
}

// run hands the terminal to ov until it exits
func (p *PagerOps) run(r io.Reader) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// ov must not leave its screen behind on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov time to let go of the terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return root.Run()
}

// showPager returns a command that runs the pager and reports when it closes
func (m *Model) showPager(title string, lines []string) tea.Cmd {
	return func() tea.Msg {
		return pagerDoneMsg{err: m.pager.ShowDocument(title, lines)}
	}
}
