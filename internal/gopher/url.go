package gopher

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"burrow/internal/domain"
)

const scheme = "gopher://"

// ParseURL parses [gopher://]host[:port][/T/selector] into an entry.
// The character after the type code is a separator and is skipped; the rest is the
// selector, slashes and trailing whitespace included. A malformed port is an error rather
// than a silent default.
func ParseURL(raw string) (domain.DirectoryEntry, error) {
	rest := strings.TrimLeftFunc(raw, unicode.IsSpace)
	if len(rest) >= len(scheme) && strings.EqualFold(rest[:len(scheme)], scheme) {
		rest = rest[len(scheme):]
	}

	authority, path, hasPath := strings.Cut(rest, "/")
	authority = strings.TrimRightFunc(authority, unicode.IsSpace)

	host := authority
	port := domain.DefaultPort
	if h, portText, ok := strings.Cut(authority, ":"); ok {
		host = h
		if portText != "" {
			p, err := strconv.Atoi(portText)
			if err != nil {
				return domain.DirectoryEntry{}, &URLError{URL: raw, Reason: fmt.Sprintf("bad port %q", portText)}
			}
			if p < 1 || p > 65535 {
				return domain.DirectoryEntry{}, &URLError{URL: raw, Reason: fmt.Sprintf("port %d out of range", p)}
			}
			port = p
		}
	}
	if host == "" {
		return domain.DirectoryEntry{}, &URLError{URL: raw, Reason: "missing host"}
	}

	entry := domain.DirectoryEntry{
		Type:     domain.TypeDirectory,
		Hostname: host,
		Port:     port,
	}
	if !hasPath || path == "" {
		return entry, nil
	}

	r := []rune(path)
	entry.Type = domain.ItemType(r[0])
	if len(r) > 2 {
		entry.Selector = string(r[2:])
	}
	return entry, nil
}

// FormatURL renders an entry so that ParseURL returns the same host, port, type and selector
func FormatURL(e domain.DirectoryEntry) string {
	port := e.Port
	if port == 0 {
		port = domain.DefaultPort
	}
	return fmt.Sprintf("%s%s:%d/%c/%s", scheme, e.Hostname, port, rune(e.Type), e.Selector)
}

// NewEntry builds an entry from separately typed fields, as a manual navigation form would
func NewEntry(t domain.ItemType, host string, port int, selector string) domain.DirectoryEntry {
	if port <= 0 {
		port = domain.DefaultPort
	}
	return domain.DirectoryEntry{
		Type:     t,
		Hostname: host,
		Port:     port,
		Selector: selector,
	}
}
