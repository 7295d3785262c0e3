package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mandatory keywords per section. Presence only; values are not type-checked
// here.
var (
	mandatoryInversion = []string{
		"ne",
		"truedataindex",
		"assimindex",
		"truedata",
		"staticvar",
		"datavar",
		"obsname",
		"energy",
	}
	mandatoryForward = []string{
		"simulator",
		"parallel",
		"datatype",
	}
)

// priorKeyPrefix marks the per-variable prior definitions. At least one such
// keyword must exist in the inversion section unless IMPORTSTATICVAR is
// given.
const priorKeyPrefix = "prior_"

type ValidationResult struct {
	OK       bool     `json:"ok"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ValidateWithResult checks the mandatory keywords of both sections and
// collects every violation.
func ValidateWithResult(f *File) ValidationResult {
	var res ValidationResult
	if f == nil {
		res.Errors = append(res.Errors, "nil file")
		return res
	}

	invSection := strings.ToUpper(f.Kind.String())
	for _, k := range mandatoryInversion {
		if _, ok := f.Inversion[k]; !ok {
			res.Errors = append(res.Errors, missingKeyword(k, invSection))
		}
	}
	if _, ok := f.Inversion["importstaticvar"]; !ok {
		if !hasPriorKey(f.Inversion) {
			res.Errors = append(res.Errors, fmt.Sprintf("no PRIOR_<STATICVAR> keyword in %s section", invSection))
		}
	}

	fwdSection := strings.ToUpper(markerFwdSim)
	for _, k := range mandatoryForward {
		if _, ok := f.Forward[k]; !ok {
			res.Errors = append(res.Errors, missingKeyword(k, fwdSection))
		}
	}

	res.OK = len(res.Errors) == 0
	return res
}

// Validate reports the first mandatory-keyword violation, wrapped so callers
// can test with errors.Is(err, ErrMissingKeyword).
func Validate(f *File) error {
	res := ValidateWithResult(f)
	if res.OK {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingKeyword, res.Errors[0])
}

func missingKeyword(key, section string) string {
	return fmt.Sprintf("keyword %s missing from %s section", strings.ToUpper(key), section)
}

func hasPriorKey(m Mapping) bool {
	for k := range m {
		if strings.HasPrefix(k, priorKeyPrefix) {
			return true
		}
	}
	return false
}

func FormatValidationJSON(res ValidationResult) (string, error) {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func FormatValidationText(res ValidationResult) string {
	if res.OK {
		if len(res.Warnings) == 0 {
			return "config ok"
		}
		return fmt.Sprintf("config ok (warnings: %d)", len(res.Warnings))
	}
	if len(res.Errors) == 0 {
		return "config invalid"
	}
	return fmt.Sprintf("config invalid: %s", strings.Join(res.Errors, "; "))
}
