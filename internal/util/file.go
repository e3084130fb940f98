package util

import (
	"path/filepath"
	"strings"
)

// Drops any client supplied directory and replaces whitespace, "../cv final.pdf" -> "cv_final.pdf".
func SanitizeFileName(fileName string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		return "file"
	}

	return strings.Join(strings.Fields(base), "_")
}

func FileExtension(fileName string) string {
	return strings.ToLower(filepath.Ext(fileName))
}
