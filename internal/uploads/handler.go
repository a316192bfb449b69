package uploads

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"vastu-backend/internal/shared/server/respond"
	"vastu-backend/internal/shared/util"
)

// Handler wires HTTP handlers to the upload service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses/:id/video", h.upload)
	rg.DELETE("/analyses/:id/video", h.remove)
	rg.GET("/files/*key", h.serveFile)
}

func (h *Handler) upload(c *gin.Context) {
	analysisID := c.Param("id")
	c.Set("analysisId", analysisID)

	fileHeader, err := c.FormFile("video")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "video file is required", nil)
		return
	}

	name, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read video file", nil)
		return
	}
	defer f.Close()

	file := File{
		Name:        name,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		Reader:      f,
	}

	result := h.Svc.Upload(c.Request.Context(), file, analysisID)
	switch {
	case result.Success:
		respond.JSON(c, http.StatusCreated, result)
	case result.Rejected():
		respond.JSON(c, http.StatusBadRequest, result)
	default:
		respond.JSON(c, http.StatusInternalServerError, result)
	}
}

func (h *Handler) remove(c *gin.Context) {
	storagePath := strings.TrimSpace(c.Query("path"))
	if storagePath == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "path is required", nil)
		return
	}

	result := h.Svc.Remove(c.Request.Context(), storagePath)
	respond.OK(c, result)
}

// serveFile streams stored objects back out, backing the local store's
// public URLs.
func (h *Handler) serveFile(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	rc, err := h.Svc.Store.Open(c.Request.Context(), key)
	if err != nil {
		if os.IsNotExist(err) {
			respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open file", nil)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}
