package productcontroller

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func uploadRoot() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

func productUploadDir() string {
	return filepath.Join(uploadRoot(), "products")
}

func categoryUploadDir() string {
	return filepath.Join(uploadRoot(), "categories")
}

// saveImage stores an uploaded file under dir with a unique name and
// returns the public URL path clients fetch it by.
func saveImage(c *gin.Context, file *multipart.FileHeader, dir, publicPrefix string) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return fmt.Sprintf("%s/%s", publicPrefix, filename), nil
}
