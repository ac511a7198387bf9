package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// GlobePNG contains the raw PNG bytes of the window logo.
//
//go:embed globe.png
var GlobePNG []byte

// GlobeImage decodes the embedded logo.
func GlobeImage() (image.Image, error) {
	if len(GlobePNG) == 0 {
		return nil, fmt.Errorf("embedded globe.png is empty")
	}
	return png.Decode(bytes.NewReader(GlobePNG))
}
