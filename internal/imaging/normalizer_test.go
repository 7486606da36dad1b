package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		img.Set(x, x, color.RGBA{R: 200, G: 30, B: 30, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeEmptyPayload(t *testing.T) {
	n := NewNormalizer(true)
	_, err := n.Normalize(nil)
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestNormalizeEmptyPayloadBeatsDisabled(t *testing.T) {
	// An empty payload is a caller error even on deployments without the
	// image capability.
	n := NewNormalizer(false)
	_, err := n.Normalize([]byte{})
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestNormalizeDisabled(t *testing.T) {
	n := NewNormalizer(false)
	_, err := n.Normalize(encodePNG(t))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, n.Enabled())
}

func TestNormalizeUndecodablePayload(t *testing.T) {
	n := NewNormalizer(true)
	_, err := n.Normalize([]byte("this is a text file, not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNormalizeReencodesAsJPEG(t *testing.T) {
	n := NewNormalizer(true)

	out, err := n.Normalize(encodePNG(t))
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err, "output must decode as JPEG")
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestNormalizeAcceptsJPEGInput(t *testing.T) {
	n := NewNormalizer(true)

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	out, err := n.Normalize(buf.Bytes())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
