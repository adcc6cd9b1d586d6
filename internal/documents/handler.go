package documents

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"studentdocs-backend/internal/shared/server/middleware"
	"studentdocs-backend/internal/shared/server/respond"
	"studentdocs-backend/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id/download", h.download)
	rg.DELETE("/documents/:id", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	in := UploadInput{
		Type:         strings.TrimSpace(c.PostForm("document_type")),
		Name:         strings.TrimSpace(c.PostForm("document_name")),
		Description:  strings.TrimSpace(c.PostForm("description")),
		FileName:     fileName,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		AcademicYear: strings.TrimSpace(c.PostForm("academic_year")),
	}
	if raw := strings.TrimSpace(c.PostForm("semester")); raw != "" {
		semester, err := strconv.Atoi(raw)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "semester must be a number", nil)
			return
		}
		in.Semester = &semester
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	doc, err := h.Svc.Upload(c.Request.Context(), userID, in, file)
	if err != nil {
		writeServiceError(c, err, "failed to upload document")
		return
	}

	c.Set("documentId", doc.ID)
	respond.JSON(c, http.StatusCreated, toResponse(doc))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	docs, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err, "failed to list documents")
		return
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toResponse(doc))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	docID := c.Param("id")

	doc, rc, err := h.Svc.Download(c.Request.Context(), userID, docID)
	if err != nil {
		writeServiceError(c, err, "failed to download document")
		return
	}
	defer rc.Close()

	c.Set("documentId", doc.ID)
	contentType := doc.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	c.DataFromReader(http.StatusOK, doc.FileSize, contentType, rc, nil)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	docID := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), userID, docID); err != nil {
		writeServiceError(c, err, "failed to delete document")
		return
	}

	c.Set("documentId", docID)
	respond.JSON(c, http.StatusOK, gin.H{"deleted": true})
}

func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, ErrMetadataDelete):
		respond.Error(c, http.StatusNotFound, "delete_failed", "document not found or already deleted", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
