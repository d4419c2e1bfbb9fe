package imagecheck

import (
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/webp" // register WebP with image.Decode

	"yolocheck/internal/ports"
)

// Decoder implements ports.ImageDecoder by fully decoding the image, so that
// truncated or otherwise damaged pixel data is caught and not only bad headers.
// The format is sniffed from the content, not the file extension, so a WebP
// saved as .jpg still decodes.
type Decoder struct {
	autoOrient bool
}

// Ensure Decoder implements ImageDecoder
var _ ports.ImageDecoder = (*Decoder)(nil)

// NewDecoder creates a decoder. With autoOrient the EXIF orientation tag is
// applied before measuring, so rotated JPEGs report their displayed size.
func NewDecoder(autoOrient bool) *Decoder {
	return &Decoder{autoOrient: autoOrient}
}

// Decode reads the whole image and returns its width and height
func (d *Decoder) Decode(r io.Reader) (int, int, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(d.autoOrient))
	if err != nil {
		return 0, 0, errors.Wrap(err, "decode failed")
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return 0, 0, errors.Errorf("empty image %dx%d", bounds.Dx(), bounds.Dy())
	}
	return bounds.Dx(), bounds.Dy(), nil
}
