package loaders

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// registered decoders
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

// ImageLoader decodes an image file into tightly packed RGBA pixels.
// Params may be *metadata.ImageResourceParams.
type ImageLoader struct{}

func (il *ImageLoader) Load(path string, params interface{}) (*metadata.Resource, error) {
	flip := false
	if p, ok := params.(*metadata.ImageResourceParams); ok && p != nil {
		flip = p.FlipY
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image '%s': %w", path, err)
	}

	data := ToRGBA(img, flip)
	return &metadata.Resource{
		Type:     metadata.ResourceTypeImage,
		Name:     filepath.Base(path) + "." + format,
		FullPath: path,
		DataSize: uint64(len(data.Pixels)),
		Data:     data,
	}, nil
}

func (il *ImageLoader) Unload(r *metadata.Resource) error {
	r.Data = nil
	return nil
}

// ToRGBA converts any image into RGBA bytes, optionally flipped on Y so
// row 0 is the bottom row as OpenGL expects.
func ToRGBA(img image.Image, flipY bool) *metadata.ImageResourceData {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	if flipY {
		stride := rgba.Stride
		row := make([]uint8, stride)
		for y := 0; y < b.Dy()/2; y++ {
			top := rgba.Pix[y*stride : (y+1)*stride]
			bottom := rgba.Pix[(b.Dy()-1-y)*stride : (b.Dy()-y)*stride]
			copy(row, top)
			copy(top, bottom)
			copy(bottom, row)
		}
	}

	return &metadata.ImageResourceData{
		ChannelCount: 4,
		Width:        uint32(b.Dx()),
		Height:       uint32(b.Dy()),
		Pixels:       rgba.Pix,
	}
}
