package config

import (
	"fmt"
	"strings"
)

// SectionKind identifies which section kind occupies the inversion slot of a
// file. The forward-simulation section (FWDSIM) is always present; the other
// section is exactly one of DATAASSIM or OPTIM.
type SectionKind int

const (
	SectionDataAssim SectionKind = iota
	SectionOptim
)

func (k SectionKind) String() string {
	switch k {
	case SectionDataAssim:
		return markerDataAssim
	case SectionOptim:
		return markerOptim
	default:
		return fmt.Sprintf("SectionKind(%d)", int(k))
	}
}

const (
	markerDataAssim = "dataassim"
	markerOptim     = "optim"
	markerFwdSim    = "fwdsim"
)

// sectionHeaderLines is the number of lines a section marker occupies before
// keyword content begins: the marker line itself plus one separator line.
// The file template has always carried exactly one separator line under each
// marker; other header layouts are not supported.
const sectionHeaderLines = 2

// splitSections partitions the cleaned line sequence into the inversion and
// forward-simulation line ranges. Markers are matched case-insensitively on
// the trimmed line; either section may come first. If a marker repeats, the
// last occurrence wins.
func splitSections(lines []string) (inv, fwd []string, kind SectionKind, err error) {
	invIdx, fwdIdx := -1, -1
	kind = SectionDataAssim

	for i, line := range lines {
		switch strings.ToLower(strings.TrimSpace(line)) {
		case markerDataAssim:
			invIdx = i
			kind = SectionDataAssim
		case markerOptim:
			invIdx = i
			kind = SectionOptim
		case markerFwdSim:
			fwdIdx = i
		}
	}

	if invIdx < 0 {
		return nil, nil, kind, fmt.Errorf("%w: no %s or %s marker found", ErrMissingSection, strings.ToUpper(markerDataAssim), strings.ToUpper(markerOptim))
	}
	if fwdIdx < 0 {
		return nil, nil, kind, fmt.Errorf("%w: no %s marker found", ErrMissingSection, strings.ToUpper(markerFwdSim))
	}

	if invIdx < fwdIdx {
		inv = sectionRange(lines, invIdx, fwdIdx)
		fwd = sectionRange(lines, fwdIdx, len(lines))
	} else {
		fwd = sectionRange(lines, fwdIdx, invIdx)
		inv = sectionRange(lines, invIdx, len(lines))
	}
	return inv, fwd, kind, nil
}

// sectionRange slices the content lines of the section whose marker sits at
// start, ending before end. A section whose header overruns its range is
// empty, not an error; the mandatory-keyword check reports the real problem.
func sectionRange(lines []string, start, end int) []string {
	from := start + sectionHeaderLines
	if from > end {
		from = end
	}
	return lines[from:end]
}
