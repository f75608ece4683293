package modes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/domain"
	"burrow/internal/gopher"
	"burrow/internal/ui/input/types"
)

// Focus positions of the address form, top to bottom
const (
	focusType = iota
	focusHost
	focusPort
	focusSelector
	focusCount
)

// FormMode builds an address field by field: item type, host, port and selector
type FormMode struct {
	types   []gopher.ItemInfo
	typeIdx int
	inputs  [focusCount - 1]textinput.Model // host, port, selector
	focus   int
}

func NewFormMode() *FormMode {
	m := &FormMode{types: gopher.SelectableTypes()}
	placeholders := [focusCount - 1]string{"gopher.floodgap.com", "70", "/"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 1024
		m.inputs[i] = ti
	}
	m.inputs[focusPort-1].CharLimit = 5
	m.clear()
	return m
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	m.clear()
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return nil
}

// Prefill fills the fields from a typed address. Text that does not parse becomes the host.
func (m *FormMode) Prefill(raw string) {
	entry, err := gopher.ParseURL(raw)
	if err != nil {
		m.inputs[focusHost-1].SetValue(strings.TrimSpace(raw))
		return
	}
	m.selectType(entry.Type)
	m.inputs[focusHost-1].SetValue(entry.Hostname)
	m.inputs[focusPort-1].SetValue(strconv.Itoa(entry.Port))
	m.inputs[focusSelector-1].SetValue(entry.Selector)
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "enter":
		entry, err := m.Entry()
		if err != nil {
			return []types.Action{types.FormErrorAction{Message: err.Error()}}, true
		}
		return []types.Action{
			types.SubmitEntryAction{Entry: entry},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "tab", "down":
		m.setFocus((m.focus + 1) % focusCount)
		return nil, true
	case "shift+tab", "up":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return nil, true
	case "ctrl+u":
		m.clear()
		return nil, true
	}

	if m.focus == focusType {
		switch msg.Type {
		case tea.KeyLeft:
			m.typeIdx = (m.typeIdx + len(m.types) - 1) % len(m.types)
		case tea.KeyRight, tea.KeySpace:
			m.typeIdx = (m.typeIdx + 1) % len(m.types)
		case tea.KeyRunes:
			// Typing a type code picks it
			if len(msg.Runes) == 1 {
				m.selectType(domain.ItemType(msg.Runes[0]))
			}
		}
		return nil, true
	}

	// The form owns its inputs, so keys never reach the shared text input
	m.inputs[m.focus-1], _ = m.inputs[m.focus-1].Update(msg)
	return nil, true
}

// Entry validates the fields and builds the entry they describe
func (m *FormMode) Entry() (domain.DirectoryEntry, error) {
	host := strings.TrimSpace(m.inputs[focusHost-1].Value())
	if host == "" {
		return domain.DirectoryEntry{}, fmt.Errorf("host is required")
	}
	port := 0
	if text := strings.TrimSpace(m.inputs[focusPort-1].Value()); text != "" {
		p, err := strconv.Atoi(text)
		if err != nil || p < 1 || p > 65535 {
			return domain.DirectoryEntry{}, fmt.Errorf("port must be a number from 1 to 65535, not %q", text)
		}
		port = p
	}
	selector := m.inputs[focusSelector-1].Value()
	return gopher.NewEntry(m.types[m.typeIdx].Code, host, port, selector), nil
}

// View renders the fields, marking the focused one
func (m *FormMode) View() string {
	var b strings.Builder
	info := m.types[m.typeIdx]
	rows := []struct {
		label string
		value string
	}{
		{"Type", fmt.Sprintf("‹ %s %s ›", info.Label, info.Name)},
		{"Host", m.inputs[focusHost-1].View()},
		{"Port", m.inputs[focusPort-1].View()},
		{"Selector", m.inputs[focusSelector-1].View()},
	}
	for i, row := range rows {
		marker := "  "
		if i == m.focus {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%-9s %s\n", marker, row.label+":", row.value)
	}
	b.WriteString("\ntab: next field  ←/→: type  ctrl+u: clear  enter: go  esc: cancel")
	return b.String()
}

// clear empties every field and starts over on a directory at the host field
func (m *FormMode) clear() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.selectType(domain.TypeDirectory)
	m.setFocus(focusHost)
}

func (m *FormMode) selectType(code domain.ItemType) {
	for i, info := range m.types {
		if info.Code == code {
			m.typeIdx = i
			return
		}
	}
}

func (m *FormMode) setFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		if i == focus-1 {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}
