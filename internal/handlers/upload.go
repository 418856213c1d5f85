package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"watch-atelier-backend/internal/models"
)

const maxUploadSize = 10 << 20 // 10 MiB

// ImageHost stores a catalog image and returns its public URL.
// Implemented by the Supabase storage client and the ImgBB client;
// which one runs is a deployment choice.
type ImageHost interface {
	Upload(filename, contentType string, data []byte) (string, error)
}

// UploadHandler receives catalog images from the admin forms and
// pushes them to the configured image host.
type UploadHandler struct {
	host     ImageHost
	hostName string
}

func NewUploadHandler(host ImageHost, hostName string) *UploadHandler {
	return &UploadHandler{
		host:     host,
		hostName: hostName,
	}
}

// Upload godoc
// @Summary     Upload a catalog image
// @Description Uploads an image for a case or part and returns its public URL
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       image formData file true "Image file"
// @Success     200 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.host == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "image host not available"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "image file is required", Message: err.Error()})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "image too large"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "only image uploads are allowed"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to open upload", Message: err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to read upload", Message: err.Error()})
		return
	}

	url, err := h.host.Upload(fileHeader.Filename, contentType, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to upload image", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{URL: url, Host: h.hostName})
}
