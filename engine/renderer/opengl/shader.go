package opengl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

type program struct {
	id       uint32
	uniforms map[string]int32
}

func glStage(stage metadata.ShaderStage) (uint32, error) {
	switch stage {
	case metadata.ShaderStageVertex:
		return gl.VERTEX_SHADER, nil
	case metadata.ShaderStageFragment:
		return gl.FRAGMENT_SHADER, nil
	}
	return 0, fmt.Errorf("unsupported shader stage %d", stage)
}

// ShaderCreate compiles and links sources. When the shader already has a
// program it is replaced only after the new one links.
func (b *Backend) ShaderCreate(shader *metadata.Shader, sources map[metadata.ShaderStage]string) error {
	stages := make([]metadata.ShaderStage, 0, len(sources))
	for s := range sources {
		stages = append(stages, s)
	}
	sort.Slice(stages, func(i, j int) bool { return stages[i] < stages[j] })

	compiled := make([]uint32, 0, len(stages))
	defer func() {
		for _, id := range compiled {
			gl.DeleteShader(id)
		}
	}()
	for _, stage := range stages {
		id, err := compileStage(stage, sources[stage])
		if err != nil {
			core.LogError("shader '%s': %s", shader.Name, err)
			return err
		}
		compiled = append(compiled, id)
	}

	id := gl.CreateProgram()
	for _, s := range compiled {
		gl.AttachShader(id, s)
	}
	gl.LinkProgram(id)
	if err := checkProgramLinkStatus(id); err != nil {
		gl.DeleteProgram(id)
		core.LogError("shader '%s': %s", shader.Name, err)
		return err
	}
	for _, s := range compiled {
		gl.DetachShader(id, s)
	}

	if old, ok := shader.InternalData.(*program); ok {
		gl.DeleteProgram(old.id)
	}
	shader.InternalData = &program{
		id:       id,
		uniforms: make(map[string]int32),
	}
	return nil
}

func compileStage(stage metadata.ShaderStage, source string) (uint32, error) {
	kind, err := glStage(stage)
	if err != nil {
		return 0, err
	}
	id := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteShader(id)
		return 0, fmt.Errorf("%w: %s stage: %s", core.ErrShaderCompilation, stage, strings.TrimRight(log, "\x00"))
	}
	return id, nil
}

func checkProgramLinkStatus(id uint32) error {
	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		return fmt.Errorf("%w: %s", core.ErrShaderLink, strings.TrimRight(log, "\x00"))
	}
	return nil
}

func (b *Backend) ShaderDestroy(shader *metadata.Shader) {
	p, ok := shader.InternalData.(*program)
	if !ok {
		return
	}
	gl.DeleteProgram(p.id)
	shader.InternalData = nil
	shader.State = metadata.SHADER_STATE_NOT_CREATED
}

func (b *Backend) ShaderUse(shader *metadata.Shader) error {
	p, ok := shader.InternalData.(*program)
	if !ok {
		return fmt.Errorf("shader '%s' has no program", shader.Name)
	}
	gl.UseProgram(p.id)
	return nil
}

func (p *program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// ShaderSetUniform writes through glProgramUniform so the program does not
// need to be bound. Uniforms the compiler optimised away are skipped.
func (b *Backend) ShaderSetUniform(shader *metadata.Shader, name string, value interface{}) error {
	p, ok := shader.InternalData.(*program)
	if !ok {
		return fmt.Errorf("shader '%s' has no program", shader.Name)
	}
	loc := p.location(name)
	if loc < 0 {
		return nil
	}
	switch v := value.(type) {
	case int32:
		gl.ProgramUniform1i(p.id, loc, v)
	case int:
		gl.ProgramUniform1i(p.id, loc, int32(v))
	case bool:
		var i int32
		if v {
			i = 1
		}
		gl.ProgramUniform1i(p.id, loc, i)
	case float32:
		gl.ProgramUniform1f(p.id, loc, v)
	case mgl32.Vec3:
		gl.ProgramUniform3fv(p.id, loc, 1, &v[0])
	case mgl32.Vec4:
		gl.ProgramUniform4fv(p.id, loc, 1, &v[0])
	case mgl32.Mat4:
		gl.ProgramUniformMatrix4fv(p.id, loc, 1, false, &v[0])
	default:
		return fmt.Errorf("shader '%s': unsupported uniform type %T for '%s'", shader.Name, value, name)
	}
	return nil
}
