package gopher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burrow/internal/domain"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.DirectoryEntry
	}{
		{
			name: "bare host",
			raw:  "gopher.floodgap.com",
			want: domain.DirectoryEntry{Type: domain.TypeDirectory, Hostname: "gopher.floodgap.com", Port: 70},
		},
		{
			name: "scheme and trailing slash",
			raw:  "gopher://sdf.org/",
			want: domain.DirectoryEntry{Type: domain.TypeDirectory, Hostname: "sdf.org", Port: 70},
		},
		{
			name: "upper case scheme",
			raw:  "GOPHER://sdf.org",
			want: domain.DirectoryEntry{Type: domain.TypeDirectory, Hostname: "sdf.org", Port: 70},
		},
		{
			name: "port type and selector",
			raw:  "gopher://example.org:7070/0/docs/readme.txt",
			want: domain.DirectoryEntry{Type: domain.TypeText, Hostname: "example.org", Port: 7070, Selector: "docs/readme.txt"},
		},
		{
			name: "selector keeps slashes",
			raw:  "example.org/1//users/bob/",
			want: domain.DirectoryEntry{Type: domain.TypeDirectory, Hostname: "example.org", Port: 70, Selector: "/users/bob/"},
		},
		{
			name: "type without selector",
			raw:  "example.org/7",
			want: domain.DirectoryEntry{Type: domain.TypeQuery, Hostname: "example.org", Port: 70},
		},
		{
			name: "empty port text",
			raw:  "example.org:/1/x",
			want: domain.DirectoryEntry{Type: domain.TypeDirectory, Hostname: "example.org", Port: 70, Selector: "x"},
		},
		{
			name: "surrounding whitespace",
			raw:  "  gopher://example.org:71  ",
			want: domain.DirectoryEntry{Type: domain.TypeDirectory, Hostname: "example.org", Port: 71},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseURLRejectsMalformed(t *testing.T) {
	for _, raw := range []string{
		"gopher://example.org:abc/1/",
		"example.org:0",
		"example.org:65536/0/x",
		"example.org:-1",
		"gopher://",
		":70/1/x",
		"",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseURL(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidURL))

			var urlErr *URLError
			require.ErrorAs(t, err, &urlErr)
			assert.Equal(t, raw, urlErr.URL)
		})
	}
}

func TestFormatURLRoundTrip(t *testing.T) {
	for _, raw := range []string{
		"gopher.floodgap.com",
		"gopher://example.org:7070/0/docs/readme.txt",
		"example.org/1//users/bob/",
		"example.org/7/v2/vs",
		"example.org/I/pics/cat.png",
	} {
		t.Run(raw, func(t *testing.T) {
			first, err := ParseURL(raw)
			require.NoError(t, err)

			second, err := ParseURL(FormatURL(first))
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestFormatURLKeepsSelectorVerbatim(t *testing.T) {
	for _, sel := range []string{"/doc ", "/search\t", " /lead", "/a b/%20c"} {
		t.Run(sel, func(t *testing.T) {
			entry := domain.DirectoryEntry{Type: domain.TypeDirectory, Hostname: "example.org", Port: 70, Selector: sel}

			parsed, err := ParseURL(FormatURL(entry))
			require.NoError(t, err)
			assert.Equal(t, entry, parsed)
		})
	}
}

func TestParseURLTrimsAroundHost(t *testing.T) {
	e, err := ParseURL("  sdf.org:70 \n")
	require.NoError(t, err)
	assert.Equal(t, "sdf.org", e.Hostname)
	assert.Equal(t, 70, e.Port)
	assert.Empty(t, e.Selector)
}

func TestNewEntry(t *testing.T) {
	e := NewEntry(domain.TypeText, "example.org", 0, "/about")
	assert.Equal(t, 70, e.Port)
	assert.Equal(t, "gopher://example.org:70/0//about", FormatURL(e))
}
