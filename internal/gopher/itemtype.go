package gopher

import "burrow/internal/domain"

// Category is the interaction class of an item type
type Category int

const (
	CategoryUnsupported Category = iota
	CategoryNavigable
	CategoryLeaf
	CategoryBinary
	CategoryInfo
	CategoryError
)

func (c Category) String() string {
	switch c {
	case CategoryNavigable:
		return "navigable"
	case CategoryLeaf:
		return "leaf"
	case CategoryBinary:
		return "binary"
	case CategoryInfo:
		return "info"
	case CategoryError:
		return "error"
	default:
		return "unsupported"
	}
}

// Action is what activating an entry of a given type does
type Action int

const (
	ActionUnsupported Action = iota
	ActionNone
	ActionFetchListing
	ActionFetchText
	ActionQuery
	ActionFetchImage
	ActionOpenExternal
)

// ItemInfo is the registry record for one item type code
type ItemInfo struct {
	Code     domain.ItemType
	Label    string
	Name     string
	Category Category
	Action   Action
}

// UnknownLabel is shown for codes missing from the registry
const UnknownLabel = "[???]"

var registry = map[domain.ItemType]ItemInfo{
	domain.TypeText:      {domain.TypeText, "[TXT]", "Text file", CategoryLeaf, ActionFetchText},
	domain.TypeDirectory: {domain.TypeDirectory, "[DIR]", "Directory", CategoryNavigable, ActionFetchListing},
	domain.TypeError:     {domain.TypeError, "[ERR]", "Error", CategoryError, ActionNone},
	domain.TypeArchive:   {domain.TypeArchive, "[ZIP]", "Archive", CategoryBinary, ActionUnsupported},
	domain.TypeQuery:     {domain.TypeQuery, "[QRY]", "Search query", CategoryNavigable, ActionQuery},
	domain.TypeBinary:    {domain.TypeBinary, "[BIN]", "Binary file", CategoryBinary, ActionUnsupported},
	domain.TypeGIF:       {domain.TypeGIF, "[GIF]", "GIF image", CategoryBinary, ActionFetchImage},
	domain.TypeWebLink:   {domain.TypeWebLink, "[WWW]", "Web page", CategoryLeaf, ActionOpenExternal},
	domain.TypeInfo:      {domain.TypeInfo, "", "Information", CategoryInfo, ActionNone},
	domain.TypeImage:     {domain.TypeImage, "[IMG]", "Image", CategoryBinary, ActionFetchImage},
}

// Classify looks up an item type code. Unknown codes are Unsupported with label [???].
func Classify(code domain.ItemType) ItemInfo {
	if info, ok := registry[code]; ok {
		return info
	}
	return ItemInfo{
		Code:     code,
		Label:    UnknownLabel,
		Name:     "Unknown",
		Category: CategoryUnsupported,
		Action:   ActionUnsupported,
	}
}

// Navigable reports whether activating the type does anything beyond a notice
func (i ItemInfo) Navigable() bool {
	switch i.Action {
	case ActionNone, ActionUnsupported:
		return false
	}
	return true
}

// SelectableTypes are the types a user can pick when typing an address by hand
func SelectableTypes() []ItemInfo {
	codes := []domain.ItemType{
		domain.TypeText, domain.TypeDirectory, domain.TypeQuery,
		domain.TypeWebLink, domain.TypeGIF, domain.TypeImage,
	}
	out := make([]ItemInfo, 0, len(codes))
	for _, c := range codes {
		out = append(out, registry[c])
	}
	return out
}
