package gopher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"burrow/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code     domain.ItemType
		label    string
		category Category
		action   Action
	}{
		{'0', "[TXT]", CategoryLeaf, ActionFetchText},
		{'1', "[DIR]", CategoryNavigable, ActionFetchListing},
		{'3', "[ERR]", CategoryError, ActionNone},
		{'5', "[ZIP]", CategoryBinary, ActionUnsupported},
		{'7', "[QRY]", CategoryNavigable, ActionQuery},
		{'9', "[BIN]", CategoryBinary, ActionUnsupported},
		{'g', "[GIF]", CategoryBinary, ActionFetchImage},
		{'h', "[WWW]", CategoryLeaf, ActionOpenExternal},
		{'i', "", CategoryInfo, ActionNone},
		{'I', "[IMG]", CategoryBinary, ActionFetchImage},
		{'+', UnknownLabel, CategoryUnsupported, ActionUnsupported},
		{'s', UnknownLabel, CategoryUnsupported, ActionUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			info := Classify(tt.code)
			assert.Equal(t, tt.code, info.Code)
			assert.Equal(t, tt.label, info.Label)
			assert.Equal(t, tt.category, info.Category)
			assert.Equal(t, tt.action, info.Action)
		})
	}
}

func TestNavigable(t *testing.T) {
	var navigable []domain.ItemType
	for _, code := range []domain.ItemType{'0', '1', '3', '5', '7', '9', 'g', 'h', 'i', 'I', '?'} {
		if Classify(code).Navigable() {
			navigable = append(navigable, code)
		}
	}
	assert.Equal(t, []domain.ItemType{'0', '1', '7', 'g', 'h', 'I'}, navigable)
}

func TestSelectableTypes(t *testing.T) {
	for _, info := range SelectableTypes() {
		assert.True(t, info.Navigable(), "%s should be navigable", info.Name)
	}
}
