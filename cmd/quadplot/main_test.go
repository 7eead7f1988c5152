package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"quadgrid/tasks/quadrant"
)

func TestRunPrintsClassification(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-x", "0", "-y", "7"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != "The point is in on Y-axis\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestRunWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	var out bytes.Buffer
	if err := run([]string{"-x", "45", "-y", "0", "-o", path}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 400 {
		t.Fatalf("bounds = %v", b)
	}
	// (45, 0) at scale 80 lands on (312.5, 200).
	r, g, b, _ := img.At(313, 200).RGBA()
	if r>>8 < 0xF0 || g>>8 > 0x10 || b>>8 > 0x10 {
		t.Fatalf("expected red marker, got %x %x %x", r>>8, g>>8, b>>8)
	}
}

func TestRunRejectsNonNumeric(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-x", "abc", "-y", "1"}, &out)
	if !errors.Is(err, quadrant.ErrInvalidNumeric) {
		t.Fatalf("err = %v, want ErrInvalidNumeric", err)
	}
	if out.Len() != 0 {
		t.Fatalf("printed %q for invalid input", out.String())
	}
}
