package navigation

import (
	_ "embed"
	"fmt"
	"os"

	"burrow/internal/domain"
	"burrow/internal/gopher"
)

// HomeTitle captions the built-in home listing
const HomeTitle = "burrow"

//go:embed home.txt
var defaultHome string

// LoadHome parses the home listing from path, or the built-in one when path is empty
func LoadHome(path string) (domain.Listing, error) {
	if path == "" {
		return gopher.ParseListing(defaultHome), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read home listing: %w", err)
	}
	return gopher.ParseListing(string(data)), nil
}
