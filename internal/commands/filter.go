package commands

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Filter returns the commands whose label contains query, ignoring case,
// in catalog order. An empty query matches every command.
func Filter(catalog []Command, query string) []Entry {
	needle := strings.ToLower(query)

	entries := make([]Entry, 0, len(catalog))
	inGroup := make(map[Group]int, len(GroupOrder))
	for _, cmd := range catalog {
		if needle != "" && !strings.Contains(strings.ToLower(cmd.Label), needle) {
			continue
		}
		entries = append(entries, Entry{
			Command:      cmd,
			IndexInGroup: inGroup[cmd.Group],
			FlatIndex:    len(entries),
		})
		inGroup[cmd.Group]++
	}
	return entries
}

// Highlight returns the rune positions in label covered by the first
// case-insensitive occurrence of query, or nil if there is none.
func Highlight(label, query string) []int {
	if query == "" {
		return nil
	}

	labelRunes := []rune(label)
	lowerLabel := []rune(strings.ToLower(label))
	lowerQuery := []rune(strings.ToLower(query))
	// ToLower can change the rune count for a few scripts; positions
	// would no longer line up with the label.
	if len(lowerLabel) != len(labelRunes) {
		return nil
	}

	for start := 0; start+len(lowerQuery) <= len(lowerLabel); start++ {
		if string(lowerLabel[start:start+len(lowerQuery)]) != string(lowerQuery) {
			continue
		}
		positions := make([]int, len(lowerQuery))
		for i := range positions {
			positions[i] = start + i
		}
		return positions
	}
	return nil
}

// Suggest returns the label of the closest fuzzy match for a query that
// matched nothing. It only feeds the "no results" hint.
func Suggest(catalog []Command, query string) (string, bool) {
	if query == "" || len(catalog) == 0 {
		return "", false
	}

	labels := make([]string, len(catalog))
	for i, cmd := range catalog {
		labels[i] = cmd.Label
	}

	matches := fuzzy.Find(query, labels)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
