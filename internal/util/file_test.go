package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "cv_final.pdf", SanitizeFileName("../cv final.pdf"))
	assert.Equal(t, "resume.docx", SanitizeFileName(`C:\Users\jane\resume.docx`))
	assert.Equal(t, "file", SanitizeFileName(".."))
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, ".pdf", FileExtension("Resume.PDF"))
	assert.Equal(t, "", FileExtension("resume"))
}
