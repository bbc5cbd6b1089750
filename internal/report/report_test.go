package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/five82/pokedex/internal/catalog"
)

func sample() Result {
	return Result{
		Query: "char",
		Total: 3,
		Visible: catalog.Catalog{
			{Name: "charmander", ImageURL: "https://img/4.png", HP: catalog.KnownStat(39), Attack: catalog.KnownStat(52), BaseExperience: catalog.KnownStat(62)},
			{Name: "charizard", ImageURL: "https://img/6.png", HP: catalog.KnownStat(78)},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{" JSON ", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatText, sample()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Name", "Charmander", "Charizard", "N/A", "2 of 3 Pokémon matching \"char\""} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Charmander") > strings.Index(out, "Charizard") {
		t.Errorf("text output reordered entities:\n%s", out)
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, sample()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, buf.String())
	}
	if len(decoded) != 2 || decoded[0]["name"] != "charmander" {
		t.Fatalf("decoded = %v, want charmander first", decoded)
	}
	if decoded[0]["hp"] != float64(39) {
		t.Fatalf("hp = %v, want 39", decoded[0]["hp"])
	}
	if decoded[1]["attack"] != catalog.NotAvailable {
		t.Fatalf("attack = %v, want N/A", decoded[1]["attack"])
	}
}

func TestWrite_JSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, Result{}); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Fatalf("empty JSON = %q, want []", got)
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatYAML, sample()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	var decoded []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if len(decoded) != 2 || decoded[1]["name"] != "charizard" {
		t.Fatalf("decoded = %v, want charizard second", decoded)
	}
	if decoded[1]["baseExperience"] != "N/A" {
		t.Fatalf("baseExperience = %v, want N/A", decoded[1]["baseExperience"])
	}
}

func TestWrite_Markdown(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatMarkdown, sample()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"# Pokédex", "Charmander", "https://img/6.png", "2 of 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := Write(&buf, FormatMarkdown, Result{Query: "zzz"}); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "No Pokémon matched.") {
		t.Errorf("empty markdown output missing note:\n%s", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, Format("xml"), sample()); err == nil {
		t.Fatalf("Write(xml) returned nil error")
	}
}
