package output

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testFramebuffer() *renderer.Framebuffer {
	fb := renderer.NewFramebuffer(2, 2)
	fb.Set(0, 0, core.NewColor(1, 0, 0))
	fb.Set(1, 0, core.NewColor(0, 1, 0))
	fb.Set(0, 1, core.NewColor(0, 0, 1))
	fb.Set(1, 1, core.NewColor(5, 0.5, -1)) // overexposed, mid, negative
	return fb
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp failed for ints")
	}
	if Clamp(1.5, 0.0, 1.0) != 1.0 {
		t.Error("Clamp failed for floats")
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		input    float64
		expected uint8
	}{
		{0, 0},
		{1, 255},
		{2.5, 255},
		{-0.5, 0},
		{0.5, 127},
		{0.25, 63},
	}

	for _, tt := range tests {
		if got := Quantize(tt.input); got != tt.expected {
			t.Errorf("Quantize(%g) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestEncodePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePPM(&buf, testFramebuffer()); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}

	header := "P6\n2 2\n255\n"
	data := buf.Bytes()
	if string(data[:len(header)]) != header {
		t.Fatalf("Expected header %q, got %q", header, data[:len(header)])
	}

	expected := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 127, 0,
	}
	if !bytes.Equal(data[len(header):], expected) {
		t.Errorf("Expected pixel bytes %v, got %v", expected, data[len(header):])
	}
}

func TestEncode_ImageFormats(t *testing.T) {
	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		FormatPNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		FormatBMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		FormatTIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(bytes.NewReader(b.Bytes())) },
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, testFramebuffer(), format); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			img, err := decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
				t.Fatalf("Expected 2x2 image, got %v", img.Bounds())
			}

			r, g, b, _ := img.At(1, 1).RGBA()
			if r>>8 != 255 || g>>8 != 127 || b>>8 != 0 {
				t.Errorf("Expected (255,127,0), got (%d,%d,%d)", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"ppm", FormatPPM, false},
		{".PNG", FormatPNG, false},
		{"bmp", FormatBMP, false},
		{"tif", FormatTIFF, false},
		{".tiff", FormatTIFF, false},
		{"jpg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil || got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.input, got, err, tt.expected)
			}
		})
	}
}

func TestFormat_ExtensionAndContentType(t *testing.T) {
	tests := []struct {
		format      Format
		extension   string
		contentType string
	}{
		{FormatPPM, ".ppm", "image/x-portable-pixmap"},
		{FormatPNG, ".png", "image/png"},
		{FormatBMP, ".bmp", "image/bmp"},
		{FormatTIFF, ".tiff", "image/tiff"},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.extension {
			t.Errorf("%s.Extension() = %q, want %q", tt.format, got, tt.extension)
		}
		if got := tt.format.ContentType(); got != tt.contentType {
			t.Errorf("%s.ContentType() = %q, want %q", tt.format, got, tt.contentType)
		}
	}
}

func TestSave_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.ppm")
	if err := Save(path, testFramebuffer(), FormatPPM); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	if info.Size() != int64(len("P6\n2 2\n255\n")+12) {
		t.Errorf("Unexpected file size %d", info.Size())
	}
}
