package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/ui/input/types"
)

// GoToMode reads a gopher:// address typed by the user
type GoToMode struct {
	TextInputMode
}

func NewGoToMode(ti *textinput.Model) *GoToMode {
	return &GoToMode{
		TextInputMode: NewTextInputMode(types.ModeGoTo, "go to", "Go to: ", ti),
	}
}

// HandleKey adds tab, which moves what was typed so far into the address form
func (m *GoToMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "tab" && m.textInput != nil {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeForm, Data: m.textInput.Value()}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
