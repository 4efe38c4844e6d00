package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"filedrop-api/internal/application/ports"
	"filedrop-api/internal/infrastructure/jwt"
	"filedrop-api/internal/interface/api/rest/dto/file"
	"filedrop-api/internal/interface/api/rest/middleware"
	"filedrop-api/internal/interface/api/rest/validator"
)

type AdminController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewAdminController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AdminController {
	ac := &AdminController{
		fileService: fileService,
		logger:      logger,
	}

	r.GET(RouteAdminFiles, middleware.AdminAuth(jwtService), ac.ListFilesHandler)
	r.DELETE(RouteAdminFile, middleware.AdminAuth(jwtService), ac.DeleteFileHandler)

	return ac
}

func (ac *AdminController) ListFilesHandler(c *gin.Context) {
	files, err := ac.fileService.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		ac.logger.Error("FindAll() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, file.ResponseData{
		Data: file.ToAdminResponseSharedFiles(files),
	})
}

func (ac *AdminController) DeleteFileHandler(c *gin.Context) {
	id, err := validator.ParseFileID(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	deleted, err := ac.fileService.DeleteByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete the file"},
		)
		ac.logger.Error("DeleteByID() error", zap.Error(err))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
