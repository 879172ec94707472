package handler

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"goldenwok/internal/infrastructure/storage"
	"goldenwok/pkg/errors"
	"goldenwok/pkg/response"
)

const (
	maxUploadSize  = 10 << 20 // 10 MB per file
	maxUploadFiles = 10
)

// allowedMediaTypes maps accepted file extensions to their content type.
var allowedMediaTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
}

type FileHandler struct {
	storageClient *storage.CloudStorageClient
}

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{storageClient: storageClient}
}

// Upload accepts up to ten image or video files in the "media" multipart
// field and returns their public URLs.
func (h *FileHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid multipart form", err))
	}

	files := form.File["media"]
	if len(files) == 0 {
		return response.Error(c, errors.BadRequest("No files provided", nil))
	}

	urls, err := uploadMediaFiles(c, h.storageClient, files, "uploads")
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, echo.Map{"urls": urls})
}

// uploadMediaFiles validates and uploads a batch of media files, returning
// their public URLs in input order.
func uploadMediaFiles(c echo.Context, client *storage.CloudStorageClient, files []*multipart.FileHeader, folder string) ([]string, error) {
	if len(files) > maxUploadFiles {
		return nil, errors.BadRequest(fmt.Sprintf("At most %d files per upload", maxUploadFiles), nil)
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		contentType, err := validateMediaFile(fh)
		if err != nil {
			return nil, err
		}

		src, err := fh.Open()
		if err != nil {
			return nil, errors.Internal("Failed to read uploaded file", err)
		}

		url, err := client.UploadMedia(c.Request().Context(), src, contentType, folder)
		src.Close()
		if err != nil {
			return nil, errors.Internal("Failed to store uploaded file", err)
		}

		urls = append(urls, url)
	}

	return urls, nil
}

func validateMediaFile(fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadSize {
		return "", errors.BadRequest(fmt.Sprintf("File %s exceeds the 10MB limit", fh.Filename), nil)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType, ok := allowedMediaTypes[ext]
	if !ok {
		return "", errors.BadRequest(fmt.Sprintf("File type %s is not supported", ext), nil)
	}

	return contentType, nil
}
