package gui

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

const vertexShader = `#version 410 core
uniform mat4 ProjMtx;
in vec2 Position;
in vec2 UV;
in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;
void main()
{
	Frag_UV = UV;
	Frag_Color = Color;
	gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
` + "\x00"

const fragmentShader = `#version 410 core
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;
void main()
{
	Out_Color = vec4(Frag_Color.rgb, Frag_Color.a * texture(Texture, Frag_UV.st).r);
}
` + "\x00"

// openGL3 draws imgui draw data with an OpenGL 4.1 core context.
type openGL3 struct {
	fontTexture uint32
	program     uint32

	locTex      int32
	locProjMtx  int32
	locPosition uint32
	locUV       uint32
	locColor    uint32

	vbo uint32
	ebo uint32
}

func newOpenGL3(io imgui.IO) (*openGL3, error) {
	r := &openGL3{}
	if err := r.createProgram(); err != nil {
		return nil, err
	}
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)
	r.createFontTexture(io)
	return r, nil
}

func (r *openGL3) createProgram() error {
	vs, err := compile(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vs)
	fs, err := compile(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(fs)

	r.program = gl.CreateProgram()
	gl.AttachShader(r.program, vs)
	gl.AttachShader(r.program, fs)
	gl.LinkProgram(r.program)

	var status int32
	gl.GetProgramiv(r.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		gl.DeleteProgram(r.program)
		return fmt.Errorf("failed to link the ui shader program")
	}

	r.locTex = gl.GetUniformLocation(r.program, gl.Str("Texture\x00"))
	r.locProjMtx = gl.GetUniformLocation(r.program, gl.Str("ProjMtx\x00"))
	r.locPosition = uint32(gl.GetAttribLocation(r.program, gl.Str("Position\x00")))
	r.locUV = uint32(gl.GetAttribLocation(r.program, gl.Str("UV\x00")))
	r.locColor = uint32(gl.GetAttribLocation(r.program, gl.Str("Color\x00")))
	return nil
}

func compile(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile ui shader: %v", log)
	}
	return shader, nil
}

func (r *openGL3) createFontTexture(io imgui.IO) {
	image := io.Fonts().TextureDataAlpha8()

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height),
		0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)

	io.Fonts().SetTextureID(imgui.TextureID(r.fontTexture))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (r *openGL3) render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData) {
	displayWidth, displayHeight := displaySize[0], displaySize[1]
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if fbWidth <= 0 || fbHeight <= 0 || displayWidth <= 0 || displayHeight <= 0 {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{X: fbWidth / displayWidth, Y: fbHeight / displayHeight})

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.STENCIL_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	projection := [4][4]float32{
		{2.0 / displayWidth, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -displayHeight, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}
	gl.UseProgram(r.program)
	gl.Uniform1i(r.locTex, 0)
	gl.UniformMatrix4fv(r.locProjMtx, 1, false, &projection[0][0])
	gl.ActiveTexture(gl.TEXTURE0)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.EnableVertexAttribArray(r.locPosition)
	gl.EnableVertexAttribArray(r.locUV)
	gl.EnableVertexAttribArray(r.locColor)
	vertexSize, offsetPos, offsetUV, offsetCol := imgui.VertexBufferLayout()
	gl.VertexAttribPointerWithOffset(r.locPosition, 2, gl.FLOAT, false, int32(vertexSize), uintptr(offsetPos))
	gl.VertexAttribPointerWithOffset(r.locUV, 2, gl.FLOAT, false, int32(vertexSize), uintptr(offsetUV))
	gl.VertexAttribPointerWithOffset(r.locColor, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(offsetCol))

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		indexOffset := 0
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				clip := cmd.ClipRect()
				gl.Scissor(int32(clip.X), int32(fbHeight)-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, uintptr(indexOffset))
			}
			indexOffset += cmd.ElementCount() * indexSize
		}
	}

	gl.DeleteVertexArrays(1, &vao)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.STENCIL_TEST)
}

func (r *openGL3) dispose() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.fontTexture != 0 {
		gl.DeleteTextures(1, &r.fontTexture)
		imgui.CurrentIO().Fonts().SetTextureID(0)
		r.fontTexture = 0
	}
}
