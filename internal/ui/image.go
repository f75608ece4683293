package ui

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"burrow/internal/domain"
)

// describeImage reports format and size of an image without decoding its pixels
func describeImage(entry domain.DirectoryEntry, data []byte) string {
	name := entry.DisplayText
	if name == "" {
		name = entry.Selector
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Sprintf("%s\n\nUnrecognized image data (%s)", name, formatBytes(len(data)))
	}
	return fmt.Sprintf("%s\n\n%s image, %d×%d pixels, %s", name, format, cfg.Width, cfg.Height, formatBytes(len(data)))
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
