package gopher

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"burrow/internal/domain"
)

const (
	endOfListing  = "."
	webLinkPrefix = "URL:"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ParseListing turns a raw menu response into entries, in server order.
// It never fails: unknown types, bad ports and short lines are all rendered as best it can.
func ParseListing(raw string) domain.Listing {
	listing := domain.Listing{}
	if strings.TrimSpace(raw) == "" {
		return listing
	}

	for _, line := range strings.Split(lineEndings.Replace(raw), "\n") {
		if line == endOfListing {
			break
		}
		if line == "" {
			continue
		}
		listing = append(listing, parseLine(line))
	}
	return listing
}

func parseLine(line string) domain.DirectoryEntry {
	fields := strings.SplitN(line, "\t", 5)
	label := fields[0]

	if label == "" {
		return domain.DirectoryEntry{Type: domain.TypeInfo}
	}

	code, size := utf8.DecodeRuneInString(label)
	entry := domain.DirectoryEntry{
		Type:        domain.ItemType(code),
		DisplayText: label[size:],
	}
	if entry.Type == domain.TypeInfo || entry.Type == domain.TypeError || len(fields) < 2 {
		return entry
	}

	entry.Selector = fields[1]
	if entry.Type == domain.TypeWebLink {
		entry.Selector = strings.TrimPrefix(entry.Selector, webLinkPrefix)
	}
	if len(fields) > 2 {
		entry.Hostname = fields[2]
	}
	entry.Port = domain.DefaultPort
	if len(fields) > 3 {
		if p, err := strconv.Atoi(strings.TrimSpace(fields[3])); err == nil && p > 0 && p <= 65535 {
			entry.Port = p
		}
	}
	return entry
}

// SplitLines splits a text document into lines, treating \r\n and lone \r as line breaks.
// A final lone "." is the end-of-transfer marker and is dropped.
func SplitLines(text string) []string {
	text = lineEndings.Replace(text)
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == endOfListing {
		lines = lines[:len(lines)-1]
	}
	return lines
}
