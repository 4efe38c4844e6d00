package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"filedrop-api/internal/application/ports"
	"filedrop-api/internal/application/services"
	"filedrop-api/internal/interface/api/rest/dto/file"
	"filedrop-api/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	r.POST(RouteFiles, fc.UploadHandler)
	r.GET(RouteFile, fc.GetFileHandler)
	r.GET(RouteFileContent, fc.DownloadHandler)
	r.DELETE(RouteOwnerDelete, fc.OwnerDeleteHandler)

	return fc
}

func (fc *FileController) UploadHandler(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is empty"})
		return
	}
	if fh.Size > services.MaxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read the file"})
		fc.logger.Error("FormFile Open() error", zap.Error(err))
		return
	}
	defer f.Close()

	// the declared Size already passed the cap; the extra byte catches liars
	data, err := io.ReadAll(io.LimitReader(f, services.MaxFileSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read the file"})
		fc.logger.Error("FormFile read error", zap.Error(err))
		return
	}

	out, err := fc.fileService.Upload(c.Request.Context(), fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyFile):
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is empty"})
		case errors.Is(err, services.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		case errors.Is(err, services.ErrUploadFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "upload failed, try again"})
			fc.logger.Error("Upload() retry budget exhausted", zap.Error(err))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload the file"})
			fc.logger.Error("Upload() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusCreated, file.ToUploadResponse(*out))
}

func (fc *FileController) GetFileHandler(c *gin.Context) {
	code := services.NormalizeCode(c.Param("code"))
	if err := validator.ValidateCode(code); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	f, err := fc.fileService.FindByCode(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get the file"})
		fc.logger.Error("FindByCode() error", zap.Error(err))
		return
	}
	if f == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.JSON(http.StatusOK, file.ToResponseSharedFile(*f))
}

func (fc *FileController) DownloadHandler(c *gin.Context) {
	code := services.NormalizeCode(c.Param("code"))
	if err := validator.ValidateCode(code); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	f, err := fc.fileService.Download(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to download the file"})
		fc.logger.Error("Download() error", zap.Error(err))
		return
	}
	if f == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.OriginalName))
	c.Data(http.StatusOK, f.ContentType, f.Data)
}

// OwnerDeleteHandler never says whether the code was unknown or the token was
// wrong; both are a plain not-found.
func (fc *FileController) OwnerDeleteHandler(c *gin.Context) {
	code := services.NormalizeCode(c.Param("code"))
	token := strings.TrimSpace(c.Param("token"))
	if validator.ValidateCode(code) != nil || token == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	deleted, err := fc.fileService.DeleteByCodeAndToken(c.Request.Context(), code, token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete the file"})
		fc.logger.Error("DeleteByCodeAndToken() error", zap.Error(err))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
