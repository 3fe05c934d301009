package server

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "imgconv/docs"
	"imgconv/internal/storage"
	"imgconv/pkg/config"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"
)

type Server struct {
	cfg     config.ServerConfig
	uploads *storage.Store
	outputs *storage.Store
	sweeper *storage.Sweeper
}

// StartServer godoc
// @title imgconv API
// @version 1.0
// @description An API to convert raster images to other file formats
// @BasePath /api/v1
func StartServer(cfg config.ServerConfig) error {
	cfg.PopulateUnsetConfigVars()

	uploads, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		return err
	}
	outputs, err := storage.NewStore(cfg.OutputDir)
	if err != nil {
		return err
	}

	sweeper := storage.NewSweeper(cfg.RetentionAge, cfg.SweepInterval, uploads.Dir(), outputs.Dir())
	sweeper.Start()
	defer sweeper.Stop()

	s := &Server{cfg: cfg, uploads: uploads, outputs: outputs, sweeper: sweeper}

	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.MaxMultipartMemory = cfg.MaxUploadBytes
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, s)

	return r.Run(fmt.Sprintf(":%s", cfg.Port))
}

func registerRoutes(r *gin.Engine, s *Server) {
	v1 := r.Group("/api/v1")
	v1.POST("/upload", s.UploadHandler)
	v1.POST("/convert", s.ConvertHandler)
	v1.GET("/download/:filename", s.DownloadHandler)
	v1.POST("/cleanup", s.CleanupHandler)
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	return fmt.Sprintf("{\"timestamp\":\"%v\", \"status_code\": \"%d\", \"latency\": \"%v\", \"latency_raw\": \"%d\", \"request_size\": \"%s\", \"request_size_raw\": \"%d\", \"client_ip\":\"%s\", \"method\": \"%s\", \"path\": \"%v\", \"error\": \"%s\"}\n",
		param.TimeStamp.Format(RFC3339Millis),
		param.StatusCode,
		param.Latency,
		param.Latency,
		humanize.Bytes(uint64(param.BodySize)),
		param.BodySize,
		param.ClientIP,
		param.Method,
		param.Path,
		param.ErrorMessage,
	)
}
