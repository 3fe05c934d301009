package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"imgconv/api"
	"imgconv/internal/logging"
)

// CleanupHandler godoc
//
// @Summary Remove expired files
// @Description This endpoint runs one retention sweep on demand, removing stored uploads and outputs older than the retention window. The same sweep also runs periodically in the background
// @Tags admin
// @Produce json
// @Success 200 {object} api.CleanupResponse
// @Failure 500 {object} api.Error
// @Router /cleanup [post]
func (s *Server) CleanupHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)

	removed, err := s.sweeper.Sweep()
	if err != nil {
		logger.WithError(err).Error("Error sweeping expired files")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errCleanup)
		return
	}

	ctx.JSON(http.StatusOK, api.CleanupResponse{Removed: removed, Message: "Cleanup completed"})
}
