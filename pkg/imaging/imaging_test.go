package imaging

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-terrain-raster/pkg/renderer"
)

func testImage() *renderer.Image {
	// 2x2 image with distinct corner colors
	return &renderer.Image{
		Width:  2,
		Height: 2,
		Pix: []uint8{
			255, 0, 0, 0, 255, 0,
			0, 0, 255, 255, 255, 255,
		},
	}
}

func TestWritePPM(t *testing.T) {
	img := testImage()

	var buf bytes.Buffer
	require.NoError(t, WritePPM(&buf, img))

	expectedHeader := fmt.Sprintf("P6\n%d %d\n255\n", img.Width, img.Height)
	out := buf.Bytes()
	require.Greater(t, len(out), len(expectedHeader))
	assert.Equal(t, expectedHeader, string(out[:len(expectedHeader)]))
	assert.Equal(t, img.Pix, out[len(expectedHeader):])
}

func TestWritePPM_RejectsBadBuffer(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WritePPM(&buf, nil))
	assert.Error(t, WritePPM(&buf, &renderer.Image{Width: 2, Height: 2, Pix: []uint8{1, 2, 3}}))
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{path: "out.ppm", expected: FormatPPM},
		{path: "out.png", expected: FormatPNG},
		{path: "out.TIF", expected: FormatTIFF},
		{path: "out.tiff", expected: FormatTIFF},
		{path: "out.bmp", expected: FormatBMP},
		{path: "out.jpg", wantErr: true},
		{path: "out", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestEncode_PNGRoundTrip(t *testing.T) {
	img := testImage()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, FormatPNG))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	r, g, b, _ := decoded.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	img := testImage()

	for _, name := range []string{"terrain.ppm", "terrain.png", "terrain.bmp", "terrain.tiff"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(path, img), name)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestWriteFile_UnsupportedExtensionLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrain.webp")
	assert.Error(t, WriteFile(path, testImage()))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
