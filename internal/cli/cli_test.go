package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/fadeline/internal/gradient"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := buildRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func TestRenderTextFromArgs(t *testing.T) {
	out, err := execute(t, "", "-c", "#ff0000", "-c", "#0000ff", "hello", "world")
	if err != nil {
		t.Fatal(err)
	}
	if got := ansi.Strip(out); got != "hello world\n" {
		t.Errorf("stripped output = %q, want %q", got, "hello world\n")
	}
}

func TestRenderTextFromStdin(t *testing.T) {
	out, err := execute(t, "from stdin\nsecond line\n")
	if err != nil {
		t.Fatal(err)
	}
	if got := ansi.Strip(out); got != "from stdin\nsecond line\n" {
		t.Errorf("stripped output = %q", got)
	}
}

func TestMoreColorsThanCharsSurfaces(t *testing.T) {
	_, err := execute(t, "", "-c", "#ff0000", "-c", "#00ff00", "-c", "#0000ff", "ab")
	if !errors.Is(err, gradient.ErrMoreColorsThanChars) {
		t.Fatalf("err = %v, want ErrMoreColorsThanChars", err)
	}
}

func TestColorAndPresetConflict(t *testing.T) {
	_, err := execute(t, "", "-c", "#ff0000", "-p", "ocean", "text")
	if !errors.Is(err, errUsage) {
		t.Fatalf("err = %v, want usage error", err)
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := execute(t, "", "-p", "plaid", "text")
	if !errors.Is(err, errUsage) {
		t.Fatalf("err = %v, want usage error", err)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		wantErr bool
		check   func(t *testing.T, req request)
	}{
		{
			name: "explicit colors",
			opts: options{colors: []string{"#ff0000", "#0000ff"}, mode: "linear"},
			check: func(t *testing.T, req request) {
				if len(req.stops) != 2 || req.stops[0] != gradient.RGB(255, 0, 0) {
					t.Errorf("stops = %v", req.stops)
				}
				if req.mode != gradient.BlendLinear {
					t.Errorf("mode = %v, want linear", req.mode)
				}
				if req.fixedSet {
					t.Error("fixedSet with no --fixed")
				}
			},
		},
		{
			name: "default preset",
			opts: options{mode: "perceptual"},
			check: func(t *testing.T, req request) {
				if len(req.stops) < 2 {
					t.Errorf("default stops = %v", req.stops)
				}
			},
		},
		{
			name: "fixed and background",
			opts: options{mode: "perceptual", fixed: "#1a1b26", background: true},
			check: func(t *testing.T, req request) {
				if !req.fixedSet || req.fixed != gradient.RGB(26, 27, 38) {
					t.Errorf("fixed = %v set=%v", req.fixed, req.fixedSet)
				}
				if !req.background {
					t.Error("background not carried")
				}
			},
		},
		{name: "bad color", opts: options{colors: []string{"red"}, mode: "linear"}, wantErr: true},
		{name: "bad mode", opts: options{mode: "hsv"}, wantErr: true},
		{name: "bad fixed", opts: options{mode: "linear", fixed: "nope"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.opts.resolve()
			if tt.wantErr {
				if !errors.Is(err, errUsage) {
					t.Fatalf("err = %v, want usage error", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, req)
		})
	}
}

func TestRenderLineEmpty(t *testing.T) {
	req := request{stops: []gradient.Color{gradient.RGB(255, 0, 0), gradient.RGB(0, 0, 255)}, mode: gradient.BlendLinear}
	out, err := renderLine("", req)
	if err != nil {
		t.Fatal(err)
	}
	if ansi.Strip(out) != "" {
		t.Errorf("empty line rendered as %q", out)
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "", "presets")
	if err != nil {
		t.Fatal(err)
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"sunset", "ocean", "rainbow"} {
		if !strings.Contains(plain, want) {
			t.Errorf("presets output missing %q:\n%s", want, plain)
		}
	}
}
