// Package config parses .pipt inversion configuration files.
//
// A .pipt file carries two sections: one of DATAASSIM or OPTIM describing the
// assimilation/optimization setup, and FWDSIM describing the forward
// simulation. Sections hold keyword blocks separated by blank lines; a
// block's value shape (scalar, vector or matrix of numbers or strings) is
// not declared in the file and is inferred from line structure and tab/space
// layout.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// FileSuffix is the required input file suffix.
const FileSuffix = ".pipt"

// Error kinds. All are fatal; a failed parse returns no partial result.
var (
	// ErrBadInput marks a wrong file suffix or an unreadable path.
	ErrBadInput = errors.New("bad input")
	// ErrMissingSection marks an absent DATAASSIM/OPTIM or FWDSIM marker.
	ErrMissingSection = errors.New("missing section")
	// ErrMissingKeyword marks an absent mandatory keyword.
	ErrMissingKeyword = errors.New("missing keyword")
)

// File is a parsed .pipt file: the two keyword mappings plus the kind of the
// inversion section.
type File struct {
	Inversion Mapping
	Forward   Mapping
	Kind      SectionKind
}

// Parse parses raw .pipt file content. It cleans comment lines, splits the
// two sections, classifies every keyword block and runs the mixed-type
// repair pass. Mandatory keywords are not checked here; see Validate.
func Parse(data []byte) (*File, error) {
	lines := cleanLines(normalizeInput(data))
	inv, fwd, kind, err := splitSections(lines)
	if err != nil {
		return nil, err
	}
	return &File{
		Inversion: repairMapping(parseKeywords(inv)),
		Forward:   repairMapping(parseKeywords(fwd)),
		Kind:      kind,
	}, nil
}

// Load reads, parses and validates the .pipt file at path. The suffix is
// checked before the file is touched.
func Load(path string) (*File, error) {
	if !strings.HasSuffix(path, FileSuffix) {
		return nil, fmt.Errorf("%w: %s is not a %s file (change suffix to %s)", ErrBadInput, path, FileSuffix, FileSuffix)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := Validate(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Organizer restructures the two raw keyword mappings into the final shapes
// consumed by the simulation and inversion engines. Implementations live
// with those engines; this package only drives the hand-off.
type Organizer interface {
	Organize(inversion, forward Mapping) error
	Inversion() Mapping
	Forward() Mapping
}

// LoadOrganized loads and validates path, hands the mappings to org and
// returns the organized results.
func LoadOrganized(path string, org Organizer) (Mapping, Mapping, error) {
	f, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	if err := org.Organize(f.Inversion, f.Forward); err != nil {
		return nil, nil, err
	}
	return org.Inversion(), org.Forward(), nil
}

// Passthrough is an Organizer that hands the mappings through unchanged.
type Passthrough struct {
	inv Mapping
	fwd Mapping
}

func (p *Passthrough) Organize(inversion, forward Mapping) error {
	p.inv = inversion
	p.fwd = forward
	return nil
}

func (p *Passthrough) Inversion() Mapping { return p.inv }
func (p *Passthrough) Forward() Mapping   { return p.fwd }
