package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is one parsed keyword payload. Classification commits to exactly one
// of the concrete shapes below; the repair pass may additionally produce the
// heterogeneous Fields and Rows shapes for payloads that mix numeric and
// textual content.
type Value interface {
	isValue()
}

// Num is a single number.
type Num float64

// NumVec is an ordered sequence of numbers.
type NumVec []float64

// NumMat is an ordered sequence of numeric rows. Rows may differ in length.
type NumMat [][]float64

// Str is a single lowercased string.
type Str string

// StrVec is an ordered sequence of lowercased strings.
type StrVec []string

// StrMat is an ordered sequence of string rows.
type StrMat [][]string

// Fields is a vector whose elements did not repair uniformly: each element is
// a Num, a NumVec (from splitting a space-separated numeric run), or a Str.
type Fields []Value

// Rows is a matrix whose rows did not repair uniformly: each row is a NumVec
// or a StrVec.
type Rows []Value

func (Num) isValue()    {}
func (NumVec) isValue() {}
func (NumMat) isValue() {}
func (Str) isValue()    {}
func (StrVec) isValue() {}
func (StrMat) isValue() {}
func (Fields) isValue() {}
func (Rows) isValue()   {}

// Mapping holds the keyword values of one section, keyed by the lowercased
// keyword name.
type Mapping map[string]Value

// renderValue returns a stable single-line-per-row textual form, used by the
// semantic diff and by error reporting. It is not the canonical file format;
// see Format for that.
func renderValue(v Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case Num:
		return formatFloat(float64(t))
	case Str:
		return string(t)
	case NumVec:
		return joinFloats(t, " ")
	case StrVec:
		return strings.Join(t, "\t")
	case NumMat:
		rows := make([]string, len(t))
		for i, row := range t {
			rows[i] = joinFloats(row, " ")
		}
		return strings.Join(rows, "; ")
	case StrMat:
		rows := make([]string, len(t))
		for i, row := range t {
			rows[i] = strings.Join(row, "\t")
		}
		return strings.Join(rows, "; ")
	case Fields:
		parts := make([]string, len(t))
		for i, el := range t {
			parts[i] = renderValue(el)
		}
		return strings.Join(parts, "\t")
	case Rows:
		rows := make([]string, len(t))
		for i, row := range t {
			rows[i] = renderValue(row)
		}
		return strings.Join(rows, "; ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func joinFloats(fs []float64, sep string) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = formatFloat(f)
	}
	return strings.Join(parts, sep)
}
