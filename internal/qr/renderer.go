package qr

import (
	"fmt"
	"io"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	// DefaultSize is the rendered PNG edge length in pixels.
	DefaultSize = 256
)

// Renderer encodes identifier strings into QR code PNGs. Output is
// deterministic: the same content always yields the same bytes for a
// given size and recovery level.
type Renderer struct {
	size  int
	level qrcode.RecoveryLevel
}

func NewRenderer() *Renderer {
	return &Renderer{
		size:  DefaultSize,
		level: qrcode.Medium,
	}
}

// Encode returns the PNG bytes for the given content.
func (r *Renderer) Encode(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, r.level, r.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	return png, nil
}

// EncodeTo renders the PNG for the given content directly to w.
func (r *Renderer) EncodeTo(w io.Writer, content string) error {
	png, err := r.Encode(content)
	if err != nil {
		return err
	}

	if _, err := w.Write(png); err != nil {
		return fmt.Errorf("write qr code: %w", err)
	}

	return nil
}
