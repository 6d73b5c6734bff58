package texture

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/bmp"
)

func writeImage(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		_, err = f.WriteString("not an image")
	}
	if err != nil {
		t.Fatal(err)
	}
}

func TestIndexPrefersAlphaFormats(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "Wood.bmp"), color.NRGBA{0, 0, 255, 255})
	writeImage(t, filepath.Join(dir, "sub", "wood.png"), color.NRGBA{255, 0, 0, 128})
	writeImage(t, filepath.Join(dir, "stone.jpg"), color.NRGBA{128, 128, 128, 255})
	writeImage(t, filepath.Join(dir, "notes.txt"), color.NRGBA{})

	idx := BuildIndex(dir)
	if idx.Len() != 2 {
		t.Fatalf("Len = %d, want 2", idx.Len())
	}

	path, ok := idx.ResolvePath(`textures\WOOD.jpg`)
	if !ok || filepath.Ext(path) != ".png" {
		t.Fatalf("ResolvePath(wood) = %q, %v", path, ok)
	}
	if _, ok := idx.ResolvePath("missing"); ok {
		t.Error("missing texture resolved")
	}
	if BuildIndex("").Len() != 0 || BuildIndex(filepath.Join(dir, "nope")).Len() != 0 {
		t.Error("empty or missing dir should give an empty index")
	}
}

func TestCacheResolve(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "wood.png"), color.NRGBA{255, 0, 0, 128})
	writeImage(t, filepath.Join(dir, "stone.bmp"), color.NRGBA{10, 20, 30, 255})

	cache := NewCache(BuildIndex(dir))

	var wg sync.WaitGroup
	got := make([]*image.NRGBA, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = cache.Resolve("wood")
		}(i)
	}
	wg.Wait()

	if got[0] == nil {
		t.Fatal("wood did not resolve")
	}
	for _, img := range got[1:] {
		if img != got[0] {
			t.Fatal("cache returned different images for the same texture")
		}
	}
	if c := got[0].NRGBAAt(1, 1); c != (color.NRGBA{255, 0, 0, 128}) {
		t.Errorf("wood pixel = %v", c)
	}

	stone := cache.Resolve("stone")
	if stone == nil || stone.Bounds().Dx() != 4 || stone.Bounds().Dy() != 2 {
		t.Fatalf("stone = %v", stone)
	}
	if c := stone.NRGBAAt(0, 0); c != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("stone pixel = %v", c)
	}

	var nf *NotFoundError
	if _, err := cache.Load("missing"); !errors.As(err, &nf) || nf.Name != "missing" {
		t.Errorf("Load(missing) err = %v", err)
	}
}

func TestLoadTextureErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.png")
	os.WriteFile(bad, []byte("garbage"), 0644)

	if _, err := LoadTexture(bad); err == nil {
		t.Error("expected decode error")
	}
	if _, err := LoadTexture(filepath.Join(dir, "gone.png")); err == nil {
		t.Error("expected open error")
	}
	if _, err := LoadTexture(filepath.Join(dir, "x.gif")); err == nil {
		t.Error("expected unsupported format error")
	}

	// A broken file is remembered as a failure rather than retried.
	cache := NewCache(BuildIndex(dir))
	if img := cache.Resolve("bad"); img != nil {
		t.Error("bad texture resolved")
	}
	if _, err := cache.Load("bad"); err == nil {
		t.Error("expected cached decode error")
	}
}

func TestToNRGBAOffsetOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.Set(6, 5, color.RGBA{0, 255, 0, 255})
	out := toNRGBA(src)
	if out.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("bounds = %v", out.Bounds())
	}
	if c := out.NRGBAAt(1, 0); c != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("pixel = %v", c)
	}
}
