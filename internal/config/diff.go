package config

import (
	"fmt"
	"sort"
	"strings"
)

// DiffEntry is one keyword-level difference between two parsed files.
type DiffEntry struct {
	Section string // "dataassim", "optim" or "fwdsim"
	Keyword string // empty for a section-kind change
	Kind    string // "added", "removed" or "changed"
	Old     string
	New     string
}

// Diff compares two parsed files keyword by keyword. Values compare by their
// rendered form, so numerically equal payloads with different source layout
// (tabs vs. spaces) count as equal only when they parsed to the same shape.
func Diff(oldFile, newFile *File) []DiffEntry {
	var out []DiffEntry

	if oldFile.Kind != newFile.Kind {
		out = append(out, DiffEntry{
			Section: "section",
			Kind:    "changed",
			Old:     oldFile.Kind.String(),
			New:     newFile.Kind.String(),
		})
	}

	out = append(out, diffMappings(newFile.Kind.String(), oldFile.Inversion, newFile.Inversion)...)
	out = append(out, diffMappings(markerFwdSim, oldFile.Forward, newFile.Forward)...)
	return out
}

func diffMappings(section string, oldMap, newMap Mapping) []DiffEntry {
	keys := make(map[string]struct{}, len(oldMap)+len(newMap))
	for k := range oldMap {
		keys[k] = struct{}{}
	}
	for k := range newMap {
		keys[k] = struct{}{}
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	var out []DiffEntry
	for _, k := range sorted {
		oldVal, inOld := oldMap[k]
		newVal, inNew := newMap[k]
		switch {
		case !inOld:
			out = append(out, DiffEntry{Section: section, Keyword: k, Kind: "added", New: renderValue(newVal)})
		case !inNew:
			out = append(out, DiffEntry{Section: section, Keyword: k, Kind: "removed", Old: renderValue(oldVal)})
		default:
			oldText, newText := renderValue(oldVal), renderValue(newVal)
			if oldText != newText {
				out = append(out, DiffEntry{Section: section, Keyword: k, Kind: "changed", Old: oldText, New: newText})
			}
		}
	}
	return out
}

// FormatDiffText renders diff entries one per line. An empty diff renders as
// the empty string.
func FormatDiffText(entries []DiffEntry) string {
	var b strings.Builder
	for _, e := range entries {
		switch e.Kind {
		case "added":
			fmt.Fprintf(&b, "%s: %s added: %s\n", e.Section, strings.ToUpper(e.Keyword), e.New)
		case "removed":
			fmt.Fprintf(&b, "%s: %s removed: %s\n", e.Section, strings.ToUpper(e.Keyword), e.Old)
		default:
			if e.Keyword == "" {
				fmt.Fprintf(&b, "section kind changed: %s -> %s\n", e.Old, e.New)
				continue
			}
			fmt.Fprintf(&b, "%s: %s changed: %s -> %s\n", e.Section, strings.ToUpper(e.Keyword), e.Old, e.New)
		}
	}
	return b.String()
}
