package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"imgconv/pkg/convert"
	"imgconv/pkg/raster"
)

type convertOpts struct {
	sourceImage string
	outputFile  string
	format      string
}

func ConvertCommand() *cobra.Command {
	opts := convertOpts{}

	convertCmd := &cobra.Command{
		Use:     "convert",
		Short:   "Convert a local raster image to another format",
		Example: "imgconv convert --source photo.png --format pdf",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ConvertFile(opts)
		},
	}

	convertCmd.Flags().StringVar(&opts.sourceImage, "source", "", "Raster image to convert (PNG, JPEG, GIF, BMP, TIFF or WEBP)")
	convertCmd.Flags().StringVar(&opts.format, "format", "", "Target format: jpeg, png, svg, pdf or docx")
	convertCmd.Flags().StringVar(&opts.outputFile, "output", "", "Output file path. Defaults to the source path with the target extension")

	MarkFlagsRequired(convertCmd, "source", "format")

	return convertCmd
}

func ConvertFile(opts convertOpts) error {
	target, err := convert.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	outputFile := opts.outputFile
	if outputFile == "" {
		outputFile = strings.TrimSuffix(opts.sourceImage, filepath.Ext(opts.sourceImage)) + "." + target.Ext()
	}

	s := NewSpinner()
	s.Prefix = "Decoding source image "
	s.Start()
	defer s.Stop()

	img, err := raster.Decode(opts.sourceImage)
	if err != nil {
		return err
	}

	s.Prefix = fmt.Sprintf("Encoding %s output ", target)

	result, err := convert.Convert(img, target, outputFile)
	if err != nil {
		return err
	}

	s.FinalMSG = fmt.Sprintf("Wrote %s (%s) from %dx%d %s source\n",
		result.OutputPath, humanize.Bytes(uint64(len(result.OutputBytes))), img.Width, img.Height, img.Format)
	return nil
}
