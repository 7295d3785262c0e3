package config

import "strings"

// normalizeInput prepares raw file bytes for parsing:
// - strips UTF-8 BOM
// - normalizes CRLF/CR to LF
func normalizeInput(in []byte) []byte {
	if len(in) >= 3 && in[0] == 0xEF && in[1] == 0xBB && in[2] == 0xBF {
		in = in[3:]
	}

	out := make([]byte, 0, len(in))
	for i := 0; i < len(in); i++ {
		b := in[i]
		if b == '\r' {
			if i+1 < len(in) && in[i+1] == '\n' {
				i++
			}
			out = append(out, '\n')
			continue
		}
		out = append(out, b)
	}
	return out
}

// cleanLines splits normalized input into lines and drops every comment line,
// i.e. every line whose first character is '#'. Line order is preserved; the
// trailing empty element from a final newline is stripped.
func cleanLines(in []byte) []string {
	lines := strings.Split(string(in), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func canonicalize(in []byte) []byte {
	// Deterministic output: LF line endings, no BOM, exactly one trailing
	// newline.
	out := normalizeInput(in)
	for len(out) > 0 {
		last := out[len(out)-1]
		if last == '\n' || last == ' ' || last == '\t' {
			out = out[:len(out)-1]
			continue
		}
		break
	}
	out = append(out, '\n')
	return out
}
