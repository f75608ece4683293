// Package textutil makes server-supplied text safe to draw on a terminal.
package textutil

import "strings"

// invisibleLabels names bidi and zero-width runes so they show up instead of silently
// reordering or hiding text
var invisibleLabels = map[rune]string{
	0x00AD: "⟪SHY⟫",
	0x061C: "⟪ALM⟫",
	0x180E: "⟪MVS⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0x206A: "⟪ISS⟫",
	0x206B: "⟪ASS⟫",
	0x206C: "⟪IAFS⟫",
	0x206D: "⟪AAFS⟫",
	0x206E: "⟪NADS⟫",
	0x206F: "⟪NODS⟫",
	0xFEFF: "⟪BOM⟫",
}

// Sanitize replaces control runes with '?' and labels invisible formatting runes, so
// that text from a server cannot emit escape sequences when rendered. Tabs are kept;
// line breaks become spaces.
func Sanitize(text string) string {
	if !needsSanitizing(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if label, ok := invisibleLabels[r]; ok {
			b.WriteString(label)
			continue
		}
		switch {
		case r == '\t':
			b.WriteRune(r)
		case r == '\n', r == '\r':
			b.WriteByte(' ')
		case isControl(r):
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitizing(text string) bool {
	for _, r := range text {
		if r == '\t' {
			continue
		}
		if isControl(r) {
			return true
		}
		if _, ok := invisibleLabels[r]; ok {
			return true
		}
	}
	return false
}

// isControl covers C0, DEL and C1. C1 includes the single-byte CSI and OSC introducers.
func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7f && r < 0xa0)
}
