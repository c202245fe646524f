package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/robert-malhotra/go-fits/imageio"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Print the pixel format, extents and sample summary of an image",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := resolveSettings(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		drv, err := imageio.FromImage(settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", settings.Source, err)
			os.Exit(1)
		}
		slog.Debug("image loaded", "source", drv.Source(), "samples", drv.Size())

		fmt.Printf("source:  %s\n", drv.Source())
		fmt.Printf("format:  %s\n", drv.Format())
		fmt.Printf("shape:   %s, extents %v\n", drv.Dims(), drv.Extents())
		st := drv.Stats()
		fmt.Printf("samples: %d (%d null)\n", st.Samples, st.Nulls)
		fmt.Printf("range:   min %g, max %g, mean %g\n", st.Min, st.Max, st.Mean)
	},
}

// resolveSettings builds the Settings value from --settings or from the
// positional file argument.
func resolveSettings(args []string) (imageio.Settings, error) {
	if settingsPath != "" {
		return imageio.LoadSettings(settingsPath)
	}
	if len(args) < 1 {
		return imageio.Settings{}, fmt.Errorf("a file argument or --settings is required")
	}
	return imageio.Settings{Source: args[0]}, nil
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
