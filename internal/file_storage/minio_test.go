package filestorage

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/SeakMengs/NorthwindSite/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestObjectName(t *testing.T) {
	now := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)

	name := ObjectName("../My CV final.pdf", now)
	assert.Regexp(t, regexp.MustCompile(`^2026/03/[A-Za-z0-9_-]{8}_My_CV_final\.pdf$`), name)
	assert.NotEqual(t, name, ObjectName("../My CV final.pdf", now))
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t,
		"https://cdn.northwind.dev/resumes/2026/03/abc_cv%20v2.pdf",
		ObjectURL("https://cdn.northwind.dev/", "resumes", "2026/03/abc_cv v2.pdf"))
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	cfg := config.MinioConfig{ENDPOINT: "127.0.0.1:9000", RESUME_BUCKET: "resumes", PUBLIC_URL: "https://cdn.northwind.dev"}
	client, err := NewMinioClient(&cfg)
	require.NoError(t, err)

	s := NewMinioStorage(client, cfg, zap.NewNop().Sugar())
	_, err = s.Upload(context.Background(), File{Name: "cv.pdf"})
	assert.ErrorIs(t, err, ErrEmptyFile)
}
