package cli

import (
	"github.com/spf13/cobra"
)

func RootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "imgconv",
		Short: "Convert raster images to other file formats, locally or over the web",
	}

	rootCmd.AddCommand(ServeAppCommand(), ConvertCommand())
	return rootCmd
}
