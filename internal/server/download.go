package server

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// DownloadHandler godoc
//
// @Summary Download a converted file
// @Description This endpoint serves a previously converted output file as an attachment. All errors are returned as JSON
// @Tags convert
// @Produce octet-stream
// @Param filename path string true "Name of the converted file, as returned by the convert endpoint"
// @Success 200 {file} binary
// @Failure 400 {object} api.Error
// @Failure 404 {object} api.Error
// @Router /download/{filename} [get]
func (s *Server) DownloadHandler(ctx *gin.Context) {
	name := ctx.Param("filename")

	path, err := s.outputs.Path(name)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errFileNotFound)
		return
	}

	if info, statErr := os.Stat(path); statErr != nil || !info.Mode().IsRegular() {
		ctx.AbortWithStatusJSON(http.StatusNotFound, errFileNotFound)
		return
	}

	ctx.FileAttachment(path, name)
}
