package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"imgconv/api"
	"imgconv/internal/logging"
	"imgconv/pkg/raster"
)

// UploadHandler godoc
//
// @Summary Upload a raster image
// @Description This endpoint stores the supplied raster image (PNG, JPEG, GIF, BMP, TIFF or WEBP) and returns the name under which it was stored, along with its decoded dimensions and color mode. All errors are returned as JSON
// @Tags convert
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Raster image to store for later conversion"
// @Success 200 {object} api.UploadResponse
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /upload [post]
func (s *Server) UploadHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)

	if s.cfg.MaxUploadBytes > 0 && ctx.Request.ContentLength > s.cfg.MaxUploadBytes {
		ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, api.Error{
			Code:  "file_too_large",
			Error: fmt.Sprintf("File too large. Max %s", humanize.Bytes(uint64(s.cfg.MaxUploadBytes))),
		})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil || fileHeader.Filename == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errNoFile)
		return
	}

	if !raster.SupportedExt(fileHeader.Filename) {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidFileType)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.WithError(err).Error("Error opening uploaded file")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errStoreFile)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logger.WithError(err).Error("Error reading uploaded file")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errStoreFile)
		return
	}

	name, err := s.uploads.Save(filepath.Ext(fileHeader.Filename), content)
	if err != nil {
		logger.WithError(err).Error("Error storing uploaded file")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errStoreFile)
		return
	}

	path, err := s.uploads.Path(name)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errStoreFile)
		return
	}

	img, err := raster.Decode(path)
	if err != nil {
		// The stored bytes are not a decodable raster image, remove them
		// so the sweeper never has to deal with junk uploads.
		if removeErr := s.uploads.Remove(name); removeErr != nil {
			logger.WithError(removeErr).WithFile(name).Error("Error removing invalid upload")
		}

		var decodeErr *raster.DecodeError
		if errors.As(err, &decodeErr) {
			logger.WithError(err).Warn("Uploaded file failed to decode")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
			return
		}
		logger.WithError(err).Error("Error reading stored upload")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errStoreFile)
		return
	}

	logger.WithFile(name).With("format", img.Format, "width", img.Width, "height", img.Height).Info("Upload stored")

	ctx.JSON(http.StatusOK, api.UploadResponse{
		Filename:     name,
		OriginalName: fileHeader.Filename,
		Format:       img.Format,
		Mode:         img.Mode.String(),
		Width:        img.Width,
		Height:       img.Height,
	})
}
