package render

import (
	"slices"
	"testing"

	"wildfire/internal/core"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []core.Color{{R: 1, G: 2, B: 3, A: 4}, {R: 9, G: 8, B: 7, A: 6}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{1, 0, 200}, palette)
	want := []byte{9, 8, 7, 6, 1, 2, 3, 4, 9, 8, 7, 6}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels %v, want %v", buf, want)
	}

	fillPaletteRGBA(buf, []uint8{1, 0, 200}, nil)
	if !slices.Equal(buf, make([]byte, 12)) {
		t.Fatalf("empty palette should clear, got %v", buf)
	}
}

func TestFillRampRGBA(t *testing.T) {
	low := core.Color{R: 0, G: 0, B: 0, A: 0}
	high := core.Color{R: 200, G: 100, B: 50, A: 255}
	buf := make([]byte, 12)
	fillRampRGBA(buf, []float64{-1, 0.5, 3}, low, high)
	want := []byte{0, 0, 0, 0, 100, 50, 25, 128, 200, 100, 50, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels %v, want %v", buf, want)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]float64{10, 20, 30})
	if !slices.Equal(got, []float64{0, 0.5, 1}) {
		t.Fatalf("Normalize = %v", got)
	}
	if got := Normalize([]float64{4, 4}); !slices.Equal(got, []float64{0, 0}) {
		t.Fatalf("constant field should normalize to zeros, got %v", got)
	}
	if len(Normalize(nil)) != 0 {
		t.Fatal("nil input should give empty output")
	}
}
