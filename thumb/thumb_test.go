package thumb

import (
	"bytes"
	"testing"
)

func gradient(w, h int) *Image {
	im := NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.Set(x, y, RGB565(uint8(x*255/w), uint8(y*255/h), 64))
		}
	}
	return im
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		im   *Image
	}{
		{"single pixel", &Image{Width: 1, Height: 1, Pix: []uint16{0xbeef}}},
		{"gradient", gradient(80, 48)},
		{"all black", NewImage(32, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := Encode(buf, tt.im); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			decoded, err := Decode(buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if decoded.Width != tt.im.Width || decoded.Height != tt.im.Height {
				t.Fatalf("dimensions mismatch: got %dx%d, want %dx%d",
					decoded.Width, decoded.Height, tt.im.Width, tt.im.Height)
			}
			for i := range tt.im.Pix {
				if decoded.Pix[i] != tt.im.Pix[i] {
					t.Fatalf("pixel %d mismatch: got %d, want %d", i, decoded.Pix[i], tt.im.Pix[i])
				}
			}
		})
	}
}

func TestDecodeIfPresent(t *testing.T) {
	t.Run("empty stream yields no thumbnail", func(t *testing.T) {
		if im := DecodeIfPresent(bytes.NewReader(nil)); im != nil {
			t.Fatal("expected nil thumbnail")
		}
	})

	t.Run("garbage yields no thumbnail", func(t *testing.T) {
		junk := []byte("this is certainly not a thumbnail block of any kind")
		if im := DecodeIfPresent(bytes.NewReader(junk)); im != nil {
			t.Fatal("expected nil thumbnail")
		}
	})

	t.Run("truncated block yields no thumbnail", func(t *testing.T) {
		buf := &bytes.Buffer{}
		if err := Encode(buf, gradient(16, 16)); err != nil {
			t.Fatal(err)
		}
		encoded := buf.Bytes()

		if im := DecodeIfPresent(bytes.NewReader(encoded[:len(encoded)/2])); im != nil {
			t.Fatal("expected nil thumbnail")
		}
	})

	t.Run("valid block decodes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		if err := Encode(buf, gradient(16, 16)); err != nil {
			t.Fatal(err)
		}

		im := DecodeIfPresent(buf)
		if im == nil {
			t.Fatal("expected a thumbnail")
		}
		if im.Width != 16 || im.Height != 16 {
			t.Fatalf("dimensions mismatch: got %dx%d", im.Width, im.Height)
		}
	})
}

func TestDecodeRejectsOversizedDimensions(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, gradient(8, 8)); err != nil {
		t.Fatal(err)
	}
	encoded := buf.Bytes()

	// Forge an absurd width.
	encoded[5] = 0xff
	encoded[6] = 0xff

	if _, err := Decode(bytes.NewReader(encoded)); err == nil {
		t.Fatal("expected an error for oversized dimensions")
	}
}

func TestEncodeRejectsBadImages(t *testing.T) {
	tests := []struct {
		name string
		im   *Image
	}{
		{"zero width", &Image{Width: 0, Height: 4, Pix: []uint16{}}},
		{"oversized", &Image{Width: 10000, Height: 4, Pix: []uint16{}}},
		{"short pixel buffer", &Image{Width: 4, Height: 4, Pix: make([]uint16, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Encode(&bytes.Buffer{}, tt.im); err == nil {
				t.Fatal("expected an encode error")
			}
		})
	}
}

func TestToRGBA(t *testing.T) {
	im := NewImage(2, 1)
	im.Set(0, 0, RGB565(255, 0, 0))
	im.Set(1, 0, RGB565(0, 0, 255))

	rgba := im.ToRGBA()

	r, _, _, _ := rgba.At(0, 0).RGBA()
	if r>>8 < 0xf0 {
		t.Fatalf("expected a red pixel at 0,0, got %v", rgba.At(0, 0))
	}
	_, _, b, _ := rgba.At(1, 0).RGBA()
	if b>>8 < 0xf0 {
		t.Fatalf("expected a blue pixel at 1,0, got %v", rgba.At(1, 0))
	}
}
