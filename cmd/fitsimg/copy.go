package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/robert-malhotra/go-fits/imageio"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy [src] [dst]",
	Short: "Decode an image and re-encode it to a new file",
	Long: `Copy reads the source image through the typed driver and serializes it
back out, preserving null samples. The destination must not exist.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		src, dst := args[0], args[1]

		settings := imageio.Settings{Source: src}
		if settingsPath != "" {
			loaded, err := imageio.LoadSettings(settingsPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			loaded.Source = src
			settings = loaded
		}

		drv, err := imageio.FromImage(settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", src, err)
			os.Exit(1)
		}
		slog.Debug("image loaded", "source", src, "format", drv.Format().String(), "extents", drv.Extents())

		if err := drv.WriteTo(dst); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", dst, err)
			os.Exit(1)
		}
		fmt.Printf("copied %s -> %s (%s, %v)\n", src, dst, drv.Format(), drv.Extents())
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
