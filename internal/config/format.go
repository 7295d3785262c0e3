package config

import (
	"errors"
	"sort"
	"strings"
)

// sectionSeparator is the header line written under each section marker.
const sectionSeparator = "------------------------------------------------------------"

// Format returns a deterministic canonical rendering of a parsed file:
// sections in inversion-first order, keywords sorted and uppercased, one
// blank line between blocks, exactly one trailing newline.
//
// Formatting is canonical, not byte-preserving: comments are gone by the
// time a File exists, and degenerate shapes (a one-element vector, say) may
// re-parse as a simpler shape.
func Format(f *File) ([]byte, error) {
	if f == nil {
		return nil, errors.New("nil file")
	}

	var b strings.Builder
	writeSection(&b, strings.ToUpper(f.Kind.String()), f.Inversion)
	b.WriteString("\n")
	writeSection(&b, strings.ToUpper(markerFwdSim), f.Forward)
	return canonicalize([]byte(b.String())), nil
}

func writeSection(b *strings.Builder, marker string, m Mapping) {
	b.WriteString(marker)
	b.WriteString("\n")
	b.WriteString(sectionSeparator)
	b.WriteString("\n")

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString(strings.ToUpper(k))
		b.WriteString("\n")
		for _, line := range payloadLines(m[k]) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

// payloadLines renders a value as file payload lines: one line per scalar or
// vector, one line per matrix row. Numeric vectors are space-separated,
// string vectors tab-separated, matching what the classifier accepts.
func payloadLines(v Value) []string {
	switch t := v.(type) {
	case Num:
		return []string{formatFloat(float64(t))}
	case Str:
		return []string{string(t)}
	case NumVec:
		return []string{joinFloats(t, " ")}
	case StrVec:
		return []string{strings.Join(t, "\t")}
	case NumMat:
		lines := make([]string, len(t))
		for i, row := range t {
			lines[i] = joinFloats(row, " ")
		}
		return lines
	case StrMat:
		lines := make([]string, len(t))
		for i, row := range t {
			lines[i] = strings.Join(row, "\t")
		}
		return lines
	case Fields:
		parts := make([]string, len(t))
		for i, el := range t {
			parts[i] = fieldText(el)
		}
		return []string{strings.Join(parts, "\t")}
	case Rows:
		lines := make([]string, len(t))
		for i, row := range t {
			lines[i] = rowText(row)
		}
		return lines
	default:
		return nil
	}
}

func fieldText(el Value) string {
	switch t := el.(type) {
	case Num:
		return formatFloat(float64(t))
	case NumVec:
		return joinFloats(t, " ")
	case Str:
		return string(t)
	default:
		return renderValue(el)
	}
}

func rowText(row Value) string {
	switch t := row.(type) {
	case NumVec:
		return joinFloats(t, " ")
	case StrVec:
		return strings.Join(t, "\t")
	default:
		return renderValue(row)
	}
}
