package config

import "time"

const (
	DefaultPort           = "8080"
	DefaultUploadDir      = "uploads"
	DefaultOutputDir      = "outputs"
	DefaultMaxUploadBytes = 16 * 1000 * 1000
	DefaultRetentionAge   = time.Hour
	DefaultSweepInterval  = 10 * time.Minute
)

// ServerConfig carries the process-wide settings for the conversion service.
// It is built once at startup and passed in explicitly, there is no ambient
// global configuration.
type ServerConfig struct {
	Port           string
	UploadDir      string
	OutputDir      string
	MaxUploadBytes int64
	RetentionAge   time.Duration
	SweepInterval  time.Duration
}

func (c *ServerConfig) PopulateUnsetConfigVars() {
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.UploadDir == "" {
		c.UploadDir = DefaultUploadDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.RetentionAge <= 0 {
		c.RetentionAge = DefaultRetentionAge
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = DefaultSweepInterval
	}
}
