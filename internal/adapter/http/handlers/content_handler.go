package handlers

import (
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	request "clientportal/internal/adapter/http/dto/request"
	response "clientportal/internal/adapter/http/dto/response"
	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase"
	"clientportal/pkg"
)

// DefaultMaxUploadSize caps a single content upload when no limit is configured.
const DefaultMaxUploadSize int64 = 25 << 20

var (
	errMissingFile  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "file is required", http.StatusBadRequest)
	errFileTooLarge = pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "file exceeds the upload limit", http.StatusRequestEntityTooLarge)
)

type ContentHandler struct {
	usecase       usecase.IContentUseCase
	maxUploadSize int64
}

func NewContentHandler(uc usecase.IContentUseCase, maxUploadSizeMB int64) *ContentHandler {
	limit := maxUploadSizeMB << 20
	if limit <= 0 {
		limit = DefaultMaxUploadSize
	}
	return &ContentHandler{usecase: uc, maxUploadSize: limit}
}

func category(c *gin.Context) entities.ContentCategory {
	return entities.ContentCategory(strings.ToLower(c.Param("category")))
}

// List returns a category, filtered to ?clientId= when given.
func (h *ContentHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), category(c), c.Query("clientId"))
	if err != nil {
		writeError(c, err)
		return
	}
	if items == nil {
		items = []entities.ContentItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) Add(c *gin.Context) {
	var payload request.AddContentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	item, err := h.usecase.Add(c.Request.Context(), payload.ToInput(category(c)))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		writeAppError(c, errMissingID)
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), category(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK())
}

// Upload stores the multipart "file" field and adds it to the category.
func (h *ContentHandler) Upload(c *gin.Context) {
	var form request.UploadContentForm
	if err := c.ShouldBind(&form); err != nil {
		writeBindError(c, err)
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		writeAppError(c, errMissingFile)
		return
	}
	if header.Size > h.maxUploadSize {
		writeAppError(c, errFileTooLarge)
		return
	}
	file, err := header.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer file.Close()

	item, err := h.usecase.UploadFile(c.Request.Context(), usecase.UploadContentInput{
		Category:    category(c),
		Title:       form.Title,
		Description: form.Description,
		ClientIDs:   form.ClientIDs,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        file,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DownloadFile streams an uploaded file back to the browser.
func (h *ContentHandler) DownloadFile(c *gin.Context) {
	storagePath := strings.TrimPrefix(c.Param("path"), "/")
	rc, err := h.usecase.Download(c.Request.Context(), storagePath)
	if err != nil {
		writeError(c, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(path.Ext(storagePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	headers := map[string]string{
		"Content-Disposition": mime.FormatMediaType("inline", map[string]string{"filename": path.Base(storagePath)}),
	}
	c.DataFromReader(http.StatusOK, -1, contentType, rc, headers)
}
