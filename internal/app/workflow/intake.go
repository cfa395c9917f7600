package workflow

import (
	"path/filepath"
	"strings"
)

// MaxUploadBytes caps a single upload at 16MB.
const MaxUploadBytes = 16 << 20

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".pdf":  true,
	".txt":  true,
}

// AllowedFile reports whether the upload's extension is accepted.
func AllowedFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedExtensions[ext]
}
