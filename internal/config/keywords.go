package config

import (
	"strconv"
	"strings"
)

// parseKeywords turns a section's line range into a keyword mapping. The
// first whitespace token of a block's first line is the keyword name; the
// remaining lines are the payload. Duplicate keywords overwrite (last block
// wins).
func parseKeywords(lines []string) Mapping {
	keys := make(Mapping)
	for block := range keywordBlocks(lines) {
		fields := strings.Fields(block[0])
		if len(fields) == 0 {
			// Whitespace-only first line; nothing to key on.
			continue
		}
		name := strings.ToLower(fields[0])
		keys[name] = classifyPayload(block[1:])
	}
	return keys
}

// classifyPayload infers the shape and type of a keyword payload. The
// attempts run in fixed precedence and the first success wins; the string
// branch always succeeds. Conversion failures inside an attempt are how an
// attempt declines, never an error.
func classifyPayload(payload []string) Value {
	if len(payload) == 0 {
		return NumVec{}
	}
	if v, ok := tryNumScalar(payload); ok {
		return v
	}
	if v, ok := tryNumVector(payload); ok {
		return v
	}
	if v, ok := tryNumMatrix(payload); ok {
		return v
	}
	return classifyString(payload)
}

// tryNumScalar matches a payload of exactly one line holding exactly one
// numeric token.
func tryNumScalar(payload []string) (Value, bool) {
	if len(payload) != 1 || len(strings.Fields(payload[0])) != 1 {
		return nil, false
	}
	f, ok := parseFloat(payload[0])
	if !ok {
		return nil, false
	}
	return Num(f), true
}

// tryNumVector matches a payload where every line is a single numeric token,
// one vector element per line.
func tryNumVector(payload []string) (Value, bool) {
	out := make(NumVec, len(payload))
	for i, line := range payload {
		f, ok := parseFloat(line)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// tryNumMatrix matches a payload whose whitespace tokens are all numeric. A
// single line collapses to a vector; multiple lines become one row per line,
// rows keeping each line's token count.
func tryNumMatrix(payload []string) (Value, bool) {
	if len(payload) == 1 {
		row, ok := splitFloats(payload[0])
		if !ok {
			return nil, false
		}
		return NumVec(row), true
	}
	out := make(NumMat, len(payload))
	for i, line := range payload {
		row, ok := splitFloats(line)
		if !ok {
			return nil, false
		}
		out[i] = row
	}
	return out, true
}

// classifyString is the fallback branch for payloads that are not uniformly
// numeric. Fields are tab-separated; empty fields are dropped and everything
// is lowercased.
func classifyString(payload []string) Value {
	if len(payload) == 1 {
		fields := strings.Split(payload[0], "\t")
		if len(fields) == 1 {
			return Str(strings.ToLower(strings.TrimSpace(payload[0])))
		}
		return StrVec(splitTabFields(payload[0]))
	}

	oneCol := true
	for _, line := range payload {
		if len(strings.Split(line, "\t")) > 1 {
			oneCol = false
			break
		}
	}
	if oneCol {
		out := make(StrVec, len(payload))
		for i, line := range payload {
			out[i] = strings.ToLower(line)
		}
		return out
	}

	out := make(StrMat, len(payload))
	for i, line := range payload {
		out[i] = splitTabFields(line)
	}
	return out
}

func splitTabFields(line string) []string {
	fields := strings.Split(line, "\t")
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		out = append(out, strings.ToLower(f))
	}
	return out
}

// parseFloat converts a single token, tolerating surrounding whitespace.
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}

// splitFloats converts a whitespace-separated run of numeric tokens.
func splitFloats(s string) ([]float64, bool) {
	fields := strings.Fields(s)
	out := make([]float64, len(fields))
	for i, tok := range fields {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}
