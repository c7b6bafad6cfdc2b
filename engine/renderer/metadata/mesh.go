package metadata

// MeshResourceData is what the model loader produces: one geometry config
// per primitive found in the file.
type MeshResourceData struct {
	Name     string
	Configs  []*GeometryConfig
	BasePath string
}
