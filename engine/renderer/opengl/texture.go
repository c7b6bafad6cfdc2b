package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

func channelFormat(channels uint8) (int32, uint32, error) {
	switch channels {
	case 1:
		return gl.RED, gl.RED, nil
	case 3:
		return gl.RGB, gl.RGB, nil
	case 4:
		return gl.RGBA, gl.RGBA, nil
	}
	return 0, 0, fmt.Errorf("unsupported channel count %d", channels)
}

func filterMode(f metadata.TextureFilter, mip bool) int32 {
	if f == metadata.TextureFilterModeNearest {
		if mip {
			return gl.NEAREST_MIPMAP_NEAREST
		}
		return gl.NEAREST
	}
	if mip {
		return gl.LINEAR_MIPMAP_LINEAR
	}
	return gl.LINEAR
}

func repeatMode(r metadata.TextureRepeat) int32 {
	switch r {
	case metadata.TextureRepeatMirroredRepeat:
		return gl.MIRRORED_REPEAT
	case metadata.TextureRepeatClampToEdge:
		return gl.CLAMP_TO_EDGE
	}
	return gl.REPEAT
}

func (b *Backend) TextureCreate(texture *metadata.Texture, image *metadata.ImageResourceData) error {
	internal, format, err := channelFormat(image.ChannelCount)
	if err != nil {
		return fmt.Errorf("texture '%s': %w", texture.Path, err)
	}
	if len(image.Pixels) == 0 {
		return fmt.Errorf("texture '%s' has no pixel data", texture.Path)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(image.Width), int32(image.Height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(image.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, repeatMode(texture.Repeat))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, repeatMode(texture.Repeat))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterMode(texture.FilterMinify, true))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterMode(texture.FilterMagnify, false))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	texture.ID = id
	texture.Width = image.Width
	texture.Height = image.Height
	return nil
}

func (b *Backend) TextureDestroy(texture *metadata.Texture) {
	if texture.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &texture.ID)
	texture.ID = 0
}

func (b *Backend) TextureBind(unit uint32, texture *metadata.Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture.ID)
}
