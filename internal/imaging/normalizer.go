package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var (
	// ErrEmptyImage means the caller sent a zero-length payload.
	ErrEmptyImage = errors.New("empty image payload")
	// ErrUnsupportedFormat means the payload could not be decoded.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrUnavailable means this deployment has image processing disabled.
	// Handlers must surface this as a service-level condition, not a bad
	// request.
	ErrUnavailable = errors.New("image processing unavailable")
)

const jpegQuality = 85

// Normalizer re-encodes arbitrary uploads into canonical JPEG. The enabled
// flag reflects whether the deployment carries the image capability at all;
// it is decided once at startup.
type Normalizer struct {
	enabled bool
}

func NewNormalizer(enabled bool) *Normalizer {
	return &Normalizer{enabled: enabled}
}

// Enabled reports whether this deployment can process images.
func (n *Normalizer) Enabled() bool { return n.enabled }

// Normalize decodes data and re-encodes it as JPEG. The JPEG encoder
// converts whatever color model the source used to YCbCr, so the output is
// canonical regardless of the input encoding.
func (n *Normalizer) Normalize(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if !n.enabled {
		return nil, ErrUnavailable
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnsupportedFormat
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
