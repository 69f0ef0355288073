package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/tilestyle/pkg/errors"
	"github.com/matzehuels/tilestyle/pkg/style"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"night.toml", FormatTOML, false},
		{"dir/night.TOML", FormatTOML, false},
		{"night.yaml", FormatYAML, false},
		{"night.yml", FormatYAML, false},
		{"night.json", FormatJSON, false},
		{"night.txt", "", true},
		{"night", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("FormatFromPath(%q) code = %s, want %s", tt.path, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"toml", "YAML", "yml", "json"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", s, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

const tomlStyle = `
water = "#263238"
background = "#212121"

[roads]
highway = "#9e9e9e"
minor = "#616161"
`

const yamlStyle = `
water: "#263238"
background: "#212121"
roads:
  highway: "#9e9e9e"
  minor: "#616161"
`

const jsonStyle = `{
  "water": "#263238",
  "background": "#212121",
  "roads": {"highway": "#9e9e9e", "minor": "#616161"}
}`

func TestReadStyle(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"toml", FormatTOML, tomlStyle},
		{"yaml", FormatYAML, yamlStyle},
		{"json", FormatJSON, jsonStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ReadStyle(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("ReadStyle() error: %v", err)
			}
			if got := cfg.Color("water"); got != "#263238" {
				t.Errorf("water = %q, want %q", got, "#263238")
			}
			if got := cfg.Color("roads.highway"); got != "#9e9e9e" {
				t.Errorf("roads.highway = %q, want %q", got, "#9e9e9e")
			}
			if _, ok := cfg["roads"].(map[string]any); !ok {
				t.Errorf("roads has type %T, want map[string]any", cfg["roads"])
			}
		})
	}
}

func TestReadStyleEmpty(t *testing.T) {
	for _, f := range Formats {
		cfg, err := ReadStyle(strings.NewReader(""), f)
		if err != nil {
			t.Errorf("ReadStyle(empty, %s) error: %v", f, err)
			continue
		}
		if len(cfg) != 0 {
			t.Errorf("ReadStyle(empty, %s) = %v, want empty", f, cfg)
		}
	}
}

func TestReadStyleInvalid(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"toml syntax", FormatTOML, "water = "},
		{"yaml list", FormatYAML, "- a\n- b\n"},
		{"json array", FormatJSON, `["#fff"]`},
		{"json syntax", FormatJSON, `{"water":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadStyle(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidStyle) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidStyle)
			}
		})
	}
}

func TestReadStyleUnknownFormat(t *testing.T) {
	_, err := ReadStyle(strings.NewReader("{}"), Format("xml"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestNormalize(t *testing.T) {
	in := map[any]any{
		"roads": map[any]any{"highway": "#fff"},
		"list":  []map[string]any{{"a": 1}},
	}
	out, ok := normalize(in).(map[string]any)
	if !ok {
		t.Fatalf("normalize() returned %T", normalize(in))
	}
	if _, ok := out["roads"].(map[string]any); !ok {
		t.Errorf("roads has type %T, want map[string]any", out["roads"])
	}
	list, ok := out["list"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("list = %#v, want one-element []any", out["list"])
	}
	if _, ok := list[0].(map[string]any); !ok {
		t.Errorf("list[0] has type %T, want map[string]any", list[0])
	}
}

func TestRoundTrip(t *testing.T) {
	cfg := style.Default()
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteStyle(&buf, cfg, f); err != nil {
				t.Fatalf("WriteStyle() error: %v", err)
			}
			got, err := ReadStyle(&buf, f)
			if err != nil {
				t.Fatalf("ReadStyle() error: %v", err)
			}
			if style.ExtractColors(got) != style.ExtractColors(cfg) {
				t.Errorf("colors = %+v, want %+v", style.ExtractColors(got), style.ExtractColors(cfg))
			}
		})
	}
}

func TestWriteStyleNil(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStyle(&buf, nil, FormatJSON); err != nil {
		t.Fatalf("WriteStyle() error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "{}" {
		t.Errorf("WriteStyle(nil) = %q, want %q", got, "{}")
	}
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	cfg := style.Config{
		"water": "#263238",
		"roads": map[string]any{"highway": "#9e9e9e"},
	}

	for _, name := range []string{"style.toml", "style.yaml", "style.json"} {
		path := filepath.Join(dir, name)
		if err := ExportStyle(path, cfg); err != nil {
			t.Fatalf("ExportStyle(%s) error: %v", name, err)
		}
		got, err := ImportStyle(path)
		if err != nil {
			t.Fatalf("ImportStyle(%s) error: %v", name, err)
		}
		if got.Color("roads.highway") != "#9e9e9e" {
			t.Errorf("%s: roads.highway = %q, want %q", name, got.Color("roads.highway"), "#9e9e9e")
		}
	}
}

func TestImportStyleErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ImportStyle(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file code = %s, want %s", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}

	_, err = ImportStyle(filepath.Join(dir, "style.ini"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad extension code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = ImportStyle(bad)
	if !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("bad content code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidStyle)
	}
}
