package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"burrow/internal/ui/input/types"
)

// QueryMode reads the search terms for a type 7 item
type QueryMode struct {
	TextInputMode
}

func NewQueryMode(ti *textinput.Model) *QueryMode {
	return &QueryMode{
		TextInputMode: NewTextInputMode(types.ModeQuery, "search", "Search: ", ti),
	}
}
