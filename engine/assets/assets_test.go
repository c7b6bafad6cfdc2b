package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/anima-editor/engine/assets/loaders"
	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

func TestDetermineAssetType(t *testing.T) {
	tests := []struct {
		path string
		want metadata.ResourceType
	}{
		{"shaders/lit.vert", metadata.ResourceTypeShader},
		{"shaders/lit.FRAG", metadata.ResourceTypeShader},
		{"textures/brick.png", metadata.ResourceTypeImage},
		{"textures/brick.webp", metadata.ResourceTypeImage},
		{"models/helmet.glb", metadata.ResourceTypeMesh},
		{"config.toml", metadata.ResourceTypeText},
		{"README", metadata.ResourceTypeNone},
	}
	for _, tt := range tests {
		if got := determineAssetType(tt.path); got != tt.want {
			t.Errorf("determineAssetType(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadShaderAsset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "shaders", "lit.frag"), "void main() {}")

	am, err := NewAssetManager()
	if err != nil {
		t.Fatal(err)
	}
	if err := am.Initialize(dir); err != nil {
		t.Fatal(err)
	}
	defer am.Shutdown()

	if got := am.List(metadata.ResourceTypeShader); len(got) != 1 {
		t.Fatalf("indexed shaders = %v", got)
	}

	res, err := am.LoadAsset("shaders/lit.frag", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Data.(string) != "void main() {}" || res.Type != metadata.ResourceTypeShader {
		t.Errorf("unexpected resource %+v", res)
	}

	if _, err := am.LoadAsset("shaders/missing.frag", nil); err == nil {
		t.Error("expected error for missing shader")
	}
	if _, err := am.LoadAsset("notes.md", nil); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestDispatchChangesFiresShaderEvents(t *testing.T) {
	core.EventSystemInitialize()
	defer core.EventSystemShutdown()

	var got []string
	core.EventRegister(core.EVENT_CODE_SHADER_CHANGED, func(ctx core.EventContext) bool {
		got = append(got, ctx.Data.(*core.FileEvent).Path)
		return true
	})

	am, err := NewAssetManager()
	if err != nil {
		t.Fatal(err)
	}
	defer am.Shutdown()

	am.handleFileEvent("shaders/b.frag", true)
	am.handleFileEvent("shaders/a.vert", true)
	am.handleFileEvent("shaders/a.vert", true)
	am.handleFileEvent("textures/brick.png", true)
	am.handleFileEvent("shaders/indexed.frag", false)

	if n := am.DispatchChanges(); n != 2 {
		t.Errorf("DispatchChanges fired %d events, want 2", n)
	}
	if len(got) != 2 || got[0] != "shaders/a.vert" || got[1] != "shaders/b.frag" {
		t.Errorf("events = %v", got)
	}
	if n := am.DispatchChanges(); n != 0 {
		t.Errorf("second dispatch fired %d events", n)
	}
}

func TestTextureLoaderFlipsRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stripe.png")

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tl := &loaders.TextureLoader{}
	res, err := tl.Load(path, &loaders.TextureParams{Use: metadata.TextureUseMapSpecular, FlipY: true})
	if err != nil {
		t.Fatal(err)
	}
	data := res.Data.(*loaders.TextureData)
	if data.Texture.Use != metadata.TextureUseMapSpecular || data.Texture.Width != 2 || data.Texture.Height != 2 {
		t.Errorf("unexpected texture %+v", data.Texture)
	}
	// after the flip the blue row comes first
	if data.Image.Pixels[2] != 255 || data.Image.Pixels[0] != 0 {
		t.Errorf("first pixel = %v, want blue", data.Image.Pixels[:4])
	}
	if len(data.Image.Pixels) != 16 || data.Image.ChannelCount != 4 {
		t.Errorf("unexpected pixel buffer len=%d channels=%d", len(data.Image.Pixels), data.Image.ChannelCount)
	}
}

func TestModelLoaderMissingFile(t *testing.T) {
	ml := &loaders.ModelLoader{}
	if _, err := ml.Load(filepath.Join(t.TempDir(), "missing.glb"), nil); err == nil {
		t.Error("expected error for missing model")
	}
}
