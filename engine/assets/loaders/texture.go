package loaders

import (
	"fmt"

	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

// TextureParams asks for an image to be loaded for a given texture use.
type TextureParams struct {
	Use   metadata.TextureUse
	FlipY bool
}

// TextureData is the payload of a texture resource: the texture description
// and the pixels the backend uploads.
type TextureData struct {
	Texture *metadata.Texture
	Image   *metadata.ImageResourceData
}

// TextureLoader wraps ImageLoader and tags the result with its use.
type TextureLoader struct {
	images ImageLoader
}

func (tl *TextureLoader) Load(path string, params interface{}) (*metadata.Resource, error) {
	p, ok := params.(*TextureParams)
	if !ok || p == nil {
		p = &TextureParams{Use: metadata.TextureUseMapDiffuse, FlipY: true}
	}
	res, err := tl.images.Load(path, &metadata.ImageResourceParams{FlipY: p.FlipY})
	if err != nil {
		return nil, err
	}
	img, ok := res.Data.(*metadata.ImageResourceData)
	if !ok {
		return nil, fmt.Errorf("texture '%s': unexpected image payload %T", path, res.Data)
	}
	res.Data = &TextureData{
		Texture: &metadata.Texture{
			Use:           p.Use,
			Path:          path,
			Width:         img.Width,
			Height:        img.Height,
			FilterMinify:  metadata.TextureFilterModeLinear,
			FilterMagnify: metadata.TextureFilterModeLinear,
			Repeat:        metadata.TextureRepeatRepeat,
		},
		Image: img,
	}
	return res, nil
}

func (tl *TextureLoader) Unload(r *metadata.Resource) error {
	r.Data = nil
	return nil
}
