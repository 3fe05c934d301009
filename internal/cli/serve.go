package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"imgconv/internal/server"
	"imgconv/pkg/config"
)

var serveFlags = []string{"port", "upload-dir", "output-dir", "max-upload-size", "retention", "sweep-interval"}

func ServeAppCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to convert images over the web",
		Example: "imgconv serve --port 8888 --retention 1h",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags win over IMGCONV_* env vars, env vars win over defaults.
			v := viper.New()
			v.SetEnvPrefix("IMGCONV")
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			for _, flag := range serveFlags {
				if err := v.BindPFlag(flag, cmd.Flags().Lookup(flag)); err != nil {
					return err
				}
			}

			maxUpload, err := humanize.ParseBytes(v.GetString("max-upload-size"))
			if err != nil {
				return fmt.Errorf("parse max upload size: %w", err)
			}

			return server.StartServer(config.ServerConfig{
				Port:           v.GetString("port"),
				UploadDir:      v.GetString("upload-dir"),
				OutputDir:      v.GetString("output-dir"),
				MaxUploadBytes: int64(maxUpload),
				RetentionAge:   v.GetDuration("retention"),
				SweepInterval:  v.GetDuration("sweep-interval"),
			})
		},
	}

	flags := command.Flags()
	flags.String("port", config.DefaultPort, "Port on which to start the server")
	flags.String("upload-dir", config.DefaultUploadDir, "Directory for stored uploads")
	flags.String("output-dir", config.DefaultOutputDir, "Directory for converted outputs")
	flags.String("max-upload-size", "16MB", "Maximum accepted upload size")
	flags.Duration("retention", config.DefaultRetentionAge, "Age after which stored files are removed")
	flags.Duration("sweep-interval", config.DefaultSweepInterval, "How often the retention sweep runs")

	return command
}
