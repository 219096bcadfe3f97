package export

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mpihlak/gosprouts/pkg/geometry"
	"github.com/mpihlak/gosprouts/pkg/sprouts"
)

func createTestSnapshot() sprouts.Snapshot {
	return sprouts.Snapshot{
		ID: uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e"),
		Dots: []sprouts.DotView{
			{Pos: geometry.Point{X: -100, Y: 0}, Count: 1},
			{Pos: geometry.Point{X: 100, Y: 0}, Count: 3},
			{Pos: geometry.Point{X: 0, Y: 50}, Count: 2},
		},
		Lines: []geometry.Polyline{
			{{X: -100, Y: 0}, {X: -50, Y: 30}, {X: 0, Y: 50}, {X: 50, Y: 30}, {X: 100, Y: 0}},
		},
	}
}

func TestBoundsOf(t *testing.T) {
	b, err := BoundsOf(createTestSnapshot())
	if err != nil {
		t.Fatalf("BoundsOf: %v", err)
	}

	want := Bounds{
		Min: geometry.Point{X: -100 - padding, Y: -padding},
		Max: geometry.Point{X: 100 + padding, Y: 50 + padding},
	}
	if b != want {
		t.Errorf("Expected %+v, got %+v", want, b)
	}
}

func TestEmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, sprouts.Snapshot{}); !errors.Is(err, ErrEmptyBoard) {
		t.Errorf("WritePNG: expected ErrEmptyBoard, got %v", err)
	}
	if err := WritePDF(&buf, sprouts.Snapshot{}); !errors.Is(err, ErrEmptyBoard) {
		t.Errorf("WritePDF: expected ErrEmptyBoard, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected nothing written, got %d bytes", buf.Len())
	}
}

func TestFitCentres(t *testing.T) {
	b := Bounds{Max: geometry.Point{X: 100, Y: 50}}
	f := fit(b, 400, 400)

	if f.scale != 4 {
		t.Errorf("Expected scale 4, got %v", f.scale)
	}
	centre := f.apply(geometry.Point{X: 50, Y: 25})
	if centre != (geometry.Point{X: 200, Y: 200}) {
		t.Errorf("Expected box centre at (200,200), got %v", centre)
	}
}

func TestPNGSize(t *testing.T) {
	w, h := PNGSize(Bounds{Max: geometry.Point{X: 300, Y: 200}})
	if w != 300 || h != 200 {
		t.Errorf("Expected 300x200, got %dx%d", w, h)
	}

	w, h = PNGSize(Bounds{Max: geometry.Point{X: 8192, Y: 1024}})
	if w != maxPNGSide || h != 512 {
		t.Errorf("Expected %dx512, got %dx%d", maxPNGSide, w, h)
	}
}

func TestWritePNG(t *testing.T) {
	s := createTestSnapshot()

	var buf bytes.Buffer
	if err := WritePNG(&buf, s); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}

	b, _ := BoundsOf(s)
	w, h := PNGSize(b)
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Errorf("Expected %dx%d image, got %v", w, h, img.Bounds())
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, createTestSnapshot()); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("Output does not start with a PDF header: %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestSaveFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := createTestSnapshot()

	for _, f := range []Format{PNG, PDF} {
		path, err := SaveFile(dir, s, f)
		if err != nil {
			t.Fatalf("SaveFile(%s): %v", f.Ext(), err)
		}
		if filepath.Base(path) != "sprouts-"+s.ID.String()+f.Ext() {
			t.Errorf("Unexpected file name %s", path)
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Errorf("Expected non-empty file at %s, err %v", path, err)
		}
	}
}

func TestSaveFileRemovesOnError(t *testing.T) {
	dir := t.TempDir()
	if _, err := SaveFile(dir, sprouts.Snapshot{}, PNG); !errors.Is(err, ErrEmptyBoard) {
		t.Fatalf("Expected ErrEmptyBoard, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "sprouts-") {
			t.Errorf("Partial file %s left behind", e.Name())
		}
	}
}
