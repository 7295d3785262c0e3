package config

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEncodeJSON(t *testing.T) {
	f := parseValid(t)

	out, err := EncodeJSON(f)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var doc struct {
		Section   string                 `json:"section"`
		Inversion map[string]interface{} `json:"inversion"`
		Forward   map[string]interface{} `json:"fwdsim"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v\noutput:\n%s", err, out)
	}
	if doc.Section != "dataassim" {
		t.Fatalf("section: got %q", doc.Section)
	}
	if doc.Inversion["ne"] != 100.0 {
		t.Fatalf("ne: got %v", doc.Inversion["ne"])
	}
	if doc.Forward["simulator"] != "flow" {
		t.Fatalf("simulator: got %v", doc.Forward["simulator"])
	}
}

func TestEncodeYAML(t *testing.T) {
	f := parseValid(t)

	out, err := EncodeYAML(f)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v\noutput:\n%s", err, out)
	}
	if doc["section"] != "dataassim" {
		t.Fatalf("section: got %v", doc["section"])
	}
	if !strings.Contains(string(out), "simulator: flow") {
		t.Fatalf("expected simulator in output:\n%s", out)
	}
}

func TestEncode_NilFile(t *testing.T) {
	if _, err := EncodeJSON(nil); err == nil {
		t.Fatal("expected error for nil file")
	}
	if _, err := EncodeYAML(nil); err == nil {
		t.Fatal("expected error for nil file")
	}
}
