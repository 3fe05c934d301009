package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"imgconv/api"
	"imgconv/internal/logging"
	"imgconv/pkg/convert"
	"imgconv/pkg/model"
	"imgconv/pkg/raster"
)

// ConvertHandler godoc
//
// @Summary Convert a stored image to a target format
// @Description This endpoint converts a previously uploaded image to one of the supported target formats (JPEG, PNG, SVG, PDF, DOCX) and returns the name under which the output can be downloaded. All errors are returned as JSON
// @Tags convert
// @Accept json
// @Produce json
// @Param requestBody body api.ConvertRequest true "Body with the stored file name and the target format"
// @Success 200 {object} api.ConvertResponse
// @Failure 400 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /convert [post]
func (s *Server) ConvertHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)

	var requestBody api.ConvertRequest
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	if requestBody.Filename == "" || requestBody.Format == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errMissingFields)
		return
	}

	target, err := convert.ParseFormat(requestBody.Format)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errUnsupportedFormat)
		return
	}

	srcPath, err := s.uploads.Path(requestBody.Filename)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errFileNotFound)
		return
	}
	if !s.uploads.Exists(requestBody.Filename) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, errFileNotFound)
		return
	}

	var stats model.ConvertStats

	decodeStart := time.Now()
	img, err := raster.Decode(srcPath)
	stats.Decode = time.Since(decodeStart)
	if err != nil {
		var decodeErr *raster.DecodeError
		if errors.As(err, &decodeErr) {
			logger.WithError(err).Warn("Stored upload failed to decode")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
			return
		}
		logger.WithError(err).Error("Error reading stored upload")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errConvert)
		return
	}

	outName := outputName(requestBody.Filename, target)

	encodeStart := time.Now()
	out, err := convert.Encode(img, target)
	stats.Encode = time.Since(encodeStart)
	if err != nil {
		logger.WithError(err).WithFile(requestBody.Filename).Error("Error converting image")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errConvert)
		return
	}

	if err := s.outputs.WriteAtomic(outName, out); err != nil {
		logger.WithError(err).WithFile(outName).Error("Error writing converted output")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errConvert)
		return
	}

	logger.WithFile(outName).With("stats", toHumanizedConvertStats(stats)).Info("Image conversion was successful")

	ctx.JSON(http.StatusOK, convertResponseWithStats{
		ConvertResponse: api.ConvertResponse{
			Success:     true,
			Filename:    outName,
			DownloadURL: "/api/v1/download/" + outName,
		},
		Stats: toHumanizedConvertStats(stats),
	})
}

// outputName swaps the stored upload's extension for the target format's,
// keeping the UUID stem so outputs pair up with their source upload.
func outputName(uploadName string, target convert.Format) string {
	stem := uploadName
	if idx := strings.LastIndex(uploadName, "."); idx > 0 {
		stem = uploadName[:idx]
	}
	return stem + "." + target.Ext()
}
