package palette

import (
	"errors"
	"strings"
	"testing"
)

func testResolver() *Resolver {
	return NewResolver([]Swatch{
		{ID: "gemma3-4b", Name: "Gemma 3 4B", RGB: RGB{R: 79, G: 140, B: 255}},
		{ID: "phi3-3.8b", Name: "Phi-3 Mini", RGB: RGB{R: 34, G: 197, B: 94}},
		{ID: "qwen3-4b", Name: "Qwen3 4B", RGB: RGB{R: 249, G: 115, B: 22}},
	})
}

func TestColorMatchesCanonicalTriple(t *testing.T) {
	r := testResolver()
	want := map[string]RGB{
		"gemma3-4b": {79, 140, 255},
		"phi3-3.8b": {34, 197, 94},
		"qwen3-4b":  {249, 115, 22},
	}
	for id, rgb := range want {
		for _, alpha := range []float64{0, 0.15, 0.5, 0.8, 1} {
			c, err := r.Color(id, alpha)
			if err != nil {
				t.Fatalf("Color(%q) error: %v", id, err)
			}
			if c.RGB != rgb {
				t.Fatalf("Color(%q) channels = %+v, want %+v", id, c.RGB, rgb)
			}
			if c.A != alpha {
				t.Fatalf("Color(%q, %v) alpha = %v", id, alpha, c.A)
			}
		}
	}
}

func TestColorDefaultsToOpaque(t *testing.T) {
	c, err := testResolver().Color("qwen3-4b")
	if err != nil {
		t.Fatalf("Color error: %v", err)
	}
	if c.A != 1 {
		t.Fatalf("expected default alpha 1, got %v", c.A)
	}
	if got := c.String(); got != "rgba(249, 115, 22, 1)" {
		t.Fatalf("unexpected css color %q", got)
	}
}

func TestColorUnknownIdentifier(t *testing.T) {
	_, err := testResolver().Color("llama-70b")
	if !errors.Is(err, ErrLookup) {
		t.Fatalf("expected ErrLookup, got %v", err)
	}
	if _, err := testResolver().At(3); !errors.Is(err, ErrLookup) {
		t.Fatalf("expected ErrLookup for out of range position, got %v", err)
	}
}

func TestMustColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustColor to panic on unknown id")
		}
	}()
	testResolver().MustColor("missing")
}

func TestAlphaOrderingPreserved(t *testing.T) {
	r := testResolver()
	alphas := []float64{0, 0.1, 0.2, 0.45, 0.8, 0.95, 1}
	for i := 1; i < len(alphas); i++ {
		lo := r.MustColor("gemma3-4b", alphas[i-1])
		hi := r.MustColor("gemma3-4b", alphas[i])
		if !(lo.A < hi.A) {
			t.Fatalf("opacity ordering broken: %v !< %v", lo.A, hi.A)
		}
	}
}

func TestAlphaClamped(t *testing.T) {
	c := RGB{1, 2, 3}.Alpha(1.7)
	if c.A != 1 {
		t.Fatalf("expected alpha clamped to 1, got %v", c.A)
	}
	c = RGB{1, 2, 3}.Alpha(-0.2)
	if c.A != 0 {
		t.Fatalf("expected alpha clamped to 0, got %v", c.A)
	}
}

func TestOrderedListings(t *testing.T) {
	r := testResolver()
	names := r.Names()
	if strings.Join(names, ",") != "Gemma 3 4B,Phi-3 Mini,Qwen3 4B" {
		t.Fatalf("unexpected names: %v", names)
	}
	colors := r.Colors(0.5)
	if len(colors) != 3 {
		t.Fatalf("expected 3 colors, got %d", len(colors))
	}
	for i, id := range r.IDs() {
		want := r.MustColor(id, 0.5)
		if colors[i] != want {
			t.Fatalf("colors[%d] = %v, want %v", i, colors[i], want)
		}
		at, err := r.At(i, 0.5)
		if err != nil || at != want {
			t.Fatalf("At(%d) = %v, %v; want %v", i, at, err, want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#4f8cff", "#22c55e", "#f97316", "#0a1B2c"} {
		rgb, err := HexToRGB(hex)
		if err != nil {
			t.Fatalf("HexToRGB(%q) error: %v", hex, err)
		}
		if got := rgb.Hex(); got != strings.ToLower(hex) {
			t.Fatalf("round trip %q -> %q", hex, got)
		}
		again, err := HexToRGB(rgb.Hex())
		if err != nil || again != rgb {
			t.Fatalf("second parse of %q = %+v, %v", rgb.Hex(), again, err)
		}
	}
}

func TestHexMalformed(t *testing.T) {
	for _, hex := range []string{"", "#12", "zzzzzz", "#zzzzzz", "4f8cff", "#4f8cff0", "#fff", " #4f8cff"} {
		if _, err := HexToRGB(hex); !errors.Is(err, ErrFormat) {
			t.Fatalf("HexToRGB(%q) expected ErrFormat, got %v", hex, err)
		}
	}
}

func TestColorMarshalText(t *testing.T) {
	text, err := RGB{10, 20, 30}.Alpha(0.25).MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error: %v", err)
	}
	if string(text) != "rgba(10, 20, 30, 0.25)" {
		t.Fatalf("unexpected text %q", text)
	}
}
