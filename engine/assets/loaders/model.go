package loaders

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/math"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

// ModelLoader reads .gltf/.glb files. Every triangle primitive becomes one
// geometry config; textures are referenced by path and not yet uploaded.
type ModelLoader struct{}

func (ml *ModelLoader) Load(path string, params interface{}) (*metadata.Resource, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}
	data, err := ml.parseModelData(doc, path)
	if err != nil {
		return nil, err
	}
	size := uint64(0)
	for _, c := range data.Configs {
		size += uint64(len(c.Vertices))*math.VertexFloatCount*4 + uint64(len(c.Indices))*4
	}
	return &metadata.Resource{
		Type:     metadata.ResourceTypeMesh,
		Name:     data.Name,
		FullPath: path,
		DataSize: size,
		Data:     data,
	}, nil
}

func (ml *ModelLoader) Unload(r *metadata.Resource) error {
	r.Data = nil
	return nil
}

func (ml *ModelLoader) parseModelData(doc *gltf.Document, path string) (*metadata.MeshResourceData, error) {
	base := filepath.Dir(path)
	out := &metadata.MeshResourceData{
		Name:     filepath.Base(path),
		BasePath: base,
	}
	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				core.LogWarn("model '%s': skipping non-triangle primitive %d of mesh %d", path, pi, mi)
				continue
			}
			name := mesh.Name
			if name == "" {
				name = fmt.Sprintf("mesh_%d", mi)
			}
			name = fmt.Sprintf("%s_%d", name, pi)

			config, err := readPrimitive(doc, prim, name)
			if err != nil {
				return nil, fmt.Errorf("model '%s' primitive %s: %w", path, name, err)
			}
			if prim.Material != nil {
				config.Textures = materialTextures(doc, *prim.Material, base)
			}
			out.Configs = append(out.Configs, config)
		}
	}
	if len(out.Configs) == 0 {
		return nil, fmt.Errorf("model '%s' contains no triangle geometry", path)
	}
	return out, nil
}

func readPrimitive(doc *gltf.Document, prim *gltf.Primitive, name string) (*metadata.GeometryConfig, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("missing POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, err
	}
	vertices := make([]math.Vertex3D, len(positions))
	for i, p := range positions {
		vertices[i].Position = mgl32.Vec3(p)
	}

	hasNormals := false
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err := modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, err
		}
		for i := range vertices {
			if i < len(normals) {
				vertices[i].Normal = mgl32.Vec3(normals[i])
			}
		}
		hasNormals = true
	}
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, err
		}
		for i := range vertices {
			if i < len(uvs) {
				vertices[i].Texcoord = mgl32.Vec2(uvs[i])
			}
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, err
		}
	} else {
		indices = make([]uint32, len(vertices))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	if !hasNormals {
		math.GenerateNormals(vertices, indices)
	}
	if idx, ok := prim.Attributes[gltf.TANGENT]; ok {
		tangents, err := modeler.ReadTangent(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, err
		}
		for i := range vertices {
			if i < len(tangents) {
				t := tangents[i]
				vertices[i].Tangent = mgl32.Vec3{t[0], t[1], t[2]}
			}
		}
	} else {
		math.GenerateTangents(vertices, indices)
	}

	return &metadata.GeometryConfig{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
		Extents:  math.ComputeExtents(vertices),
	}, nil
}

func materialTextures(doc *gltf.Document, materialIdx int, base string) []*metadata.Texture {
	if materialIdx < 0 || materialIdx >= len(doc.Materials) {
		return nil
	}
	mat := doc.Materials[materialIdx]
	var textures []*metadata.Texture

	add := func(textureIdx int, use metadata.TextureUse) {
		if p, ok := imagePath(doc, textureIdx, base); ok {
			textures = append(textures, &metadata.Texture{
				Use:           use,
				Path:          p,
				FilterMinify:  metadata.TextureFilterModeLinear,
				FilterMagnify: metadata.TextureFilterModeLinear,
			})
		}
	}
	if pbr := mat.PBRMetallicRoughness; pbr != nil {
		if pbr.BaseColorTexture != nil {
			add(pbr.BaseColorTexture.Index, metadata.TextureUseMapDiffuse)
		}
		if pbr.MetallicRoughnessTexture != nil {
			add(pbr.MetallicRoughnessTexture.Index, metadata.TextureUseMapSpecular)
		}
	}
	if mat.NormalTexture != nil && mat.NormalTexture.Index != nil {
		add(*mat.NormalTexture.Index, metadata.TextureUseMapNormal)
	}
	return textures
}

// imagePath resolves a texture to an image file next to the model.
// Images embedded in buffers are not supported and are skipped.
func imagePath(doc *gltf.Document, textureIdx int, base string) (string, bool) {
	if textureIdx < 0 || textureIdx >= len(doc.Textures) {
		return "", false
	}
	src := doc.Textures[textureIdx].Source
	if src == nil || *src >= len(doc.Images) {
		return "", false
	}
	img := doc.Images[*src]
	if img.URI == "" || img.IsEmbeddedResource() {
		core.LogWarn("embedded image %d is not supported, texture skipped", *src)
		return "", false
	}
	return filepath.Join(base, img.URI), true
}
