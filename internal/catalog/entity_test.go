package catalog

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestStat(t *testing.T) {
	var missing Stat
	if missing.Known() || missing.String() != NotAvailable {
		t.Fatalf("zero Stat = %q known=%v, want N/A", missing, missing.Known())
	}

	s := KnownStat(52)
	if v, ok := s.Value(); !ok || v != 52 {
		t.Fatalf("Value() = %d,%v want 52,true", v, ok)
	}
	if s.String() != "52" {
		t.Fatalf("String() = %q, want 52", s.String())
	}
}

func TestEntity_JSONShape(t *testing.T) {
	e := Entity{
		Name:     "pikachu",
		ImageURL: "https://img/25.png",
		HP:       KnownStat(35),
		Attack:   KnownStat(55),
	}
	got, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"name":"pikachu","imageUrl":"https://img/25.png","hp":35,"attack":55,"baseExperience":"N/A"}`
	if string(got) != want {
		t.Fatalf("json = %s, want %s", got, want)
	}
}

func TestEntity_YAMLShape(t *testing.T) {
	e := Entity{Name: "eevee", ImageURL: "x", BaseExperience: KnownStat(65)}
	got, err := yaml.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := "name: eevee\nimageUrl: x\nhp: N/A\nattack: N/A\nbaseExperience: 65\n"
	if string(got) != want {
		t.Fatalf("yaml =\n%s\nwant\n%s", got, want)
	}
}

func TestEntity_Title(t *testing.T) {
	tests := map[string]string{
		"bulbasaur": "Bulbasaur",
		"mr-mime":   "Mr-Mime",
		"nidoran-f": "Nidoran-F",
		"":          "",
	}
	for in, want := range tests {
		if got := (Entity{Name: in}).Title(); got != want {
			t.Errorf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}
