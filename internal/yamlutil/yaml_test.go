package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

type testConfig struct {
	Template string `yaml:"template"`
	Engine   string `yaml:"engine"`
	TexOnly  bool   `yaml:"texOnly"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Parses YAML into Go values
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "typed struct",
			data: []byte("template: classic\nengine: xelatex\ntexOnly: true"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Template != "classic" {
					t.Errorf("Template = %q, want %q", cfg.Template, "classic")
				}
				if cfg.Engine != "xelatex" {
					t.Errorf("Engine = %q, want %q", cfg.Engine, "xelatex")
				}
				if !cfg.TexOnly {
					t.Error("TexOnly = false, want true")
				}
			},
		},
		{
			name: "free-form document",
			data: []byte("name: Jane\nskills:\n  - Go\n  - SQL\nage: 30"),
			dest: new(any),
			check: func(t *testing.T, v any) {
				doc, ok := (*(v.(*any))).(map[string]any)
				if !ok {
					t.Fatalf("document decoded to %T, want map[string]any", *(v.(*any)))
				}
				if doc["name"] != "Jane" {
					t.Errorf("name = %v, want Jane", doc["name"])
				}
				skills, ok := doc["skills"].([]any)
				if !ok || len(skills) != 2 {
					t.Errorf("skills = %v, want two-element sequence", doc["skills"])
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("template: classic"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("template: [unclosed"),
			dest:    &testConfig{},
			wantErr: errors.New("yamlutil:"), // partial match
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := yamlutil.Unmarshal(tt.data, tt.dest)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("Unmarshal() expected error, got nil")
				}
				if !errors.Is(err, tt.wantErr) && !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := yamlutil.UnmarshalStrict([]byte("template: classic\nbogus: true"), &cfg)
	if err == nil {
		t.Fatal("UnmarshalStrict() accepted unknown field, want error")
	}

	if err := yamlutil.UnmarshalStrict([]byte("template: classic"), &cfg); err != nil {
		t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
	}
}

func TestUnmarshalSizeCap(t *testing.T) {
	t.Parallel()

	huge := []byte("a: " + strings.Repeat("x", yamlutil.MaxInputSize))
	var v any
	if err := yamlutil.Unmarshal(huge, &v); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}
