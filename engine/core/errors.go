package core

import (
	"errors"
)

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNoFileOpen        = errors.New("no file is open in the editor")
	ErrShaderCompilation = errors.New("shader compilation failed")
	ErrShaderLink        = errors.New("shader link failed")
	ErrGeometryUpload    = errors.New("geometry upload failed")
	ErrUnknown           = errors.New("unknown")
)
