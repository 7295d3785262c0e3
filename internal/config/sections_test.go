package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitSections_EitherOrder(t *testing.T) {
	daFirst := []string{
		"DATAASSIM",
		"----",
		"NE",
		"100",
		"",
		"FWDSIM",
		"----",
		"SIMULATOR",
		"flow",
	}
	fwdFirst := []string{
		"FWDSIM",
		"----",
		"SIMULATOR",
		"flow",
		"",
		"DATAASSIM",
		"----",
		"NE",
		"100",
	}

	for _, tt := range []struct {
		name  string
		lines []string
	}{
		{name: "dataassim first", lines: daFirst},
		{name: "fwdsim first", lines: fwdFirst},
	} {
		t.Run(tt.name, func(t *testing.T) {
			inv, fwd, kind, err := splitSections(tt.lines)
			if err != nil {
				t.Fatalf("split: %v", err)
			}
			if kind != SectionDataAssim {
				t.Fatalf("kind: got %v", kind)
			}
			if diff := cmp.Diff(Mapping{"ne": Num(100)}, parseKeywords(inv)); diff != "" {
				t.Fatalf("inversion mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(Mapping{"simulator": Str("flow")}, parseKeywords(fwd)); diff != "" {
				t.Fatalf("forward mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitSections_OptimKind(t *testing.T) {
	lines := []string{
		"OPTIM",
		"----",
		"MAXITER",
		"50",
		"",
		"FWDSIM",
		"----",
		"SIMULATOR",
		"flow",
	}

	_, _, kind, err := splitSections(lines)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if kind != SectionOptim {
		t.Fatalf("kind: got %v, want %v", kind, SectionOptim)
	}
}

func TestSplitSections_MarkerCaseAndPadding(t *testing.T) {
	lines := []string{
		"  DataAssim  ",
		"----",
		"NE",
		"1",
		"",
		"\tFWDSIM",
		"----",
		"SIMULATOR",
		"flow",
	}

	if _, _, _, err := splitSections(lines); err != nil {
		t.Fatalf("split: %v", err)
	}
}

func TestSplitSections_MissingMarkers(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "no inversion marker",
			lines: []string{"FWDSIM", "----", "SIMULATOR", "flow"},
			want:  "DATAASSIM",
		},
		{
			name:  "no fwdsim marker",
			lines: []string{"DATAASSIM", "----", "NE", "100"},
			want:  "FWDSIM",
		},
		{
			name:  "empty input",
			lines: nil,
			want:  "DATAASSIM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := splitSections(tt.lines)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrMissingSection) {
				t.Fatalf("expected ErrMissingSection, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error to name %s, got %q", tt.want, err)
			}
		})
	}
}
