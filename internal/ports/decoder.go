package ports

import "io"

// ImageDecoder fully decodes an image and reports its pixel size
type ImageDecoder interface {
	Decode(r io.Reader) (width, height int, err error)
}
