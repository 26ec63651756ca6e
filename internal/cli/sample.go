package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/hue-invert/internal/imaging"
)

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample IMAGE X Y",
		Short: "Print the color of one pixel",
		Long: `Print the color of the pixel at (X, Y) as hex, RGB and HSV.

The HSV hue is on the same 0-360 scale used for CENTER, so sampling a pixel is
the quickest way to pick the hue to invert.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: X %q is not an integer", imaging.ErrInvalidArguments, args[1])
			}
			y, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("%w: Y %q is not an integer", imaging.ErrInvalidArguments, args[2])
			}

			img, err := imaging.LoadImage(args[0])
			if err != nil {
				return err
			}
			c, err := imaging.SampleColor(img, x, y)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pixel (%d, %d): %s\n", x, y, c.Hex)
			fmt.Fprintf(out, "  rgb: %d, %d, %d\n", c.RGB.R, c.RGB.G, c.RGB.B)
			fmt.Fprintf(out, "  hsv: h=%.1f s=%.3f v=%.3f\n", c.HSV.H, c.HSV.S, c.HSV.V)
			return nil
		},
	}
}

func newHuesCmd() *cobra.Command {
	var bins, top int

	cmd := &cobra.Command{
		Use:   "hues IMAGE",
		Short: "Show the hue distribution of an image",
		Long: `Bucket the hues of all chromatic pixels and list the most common bins.

Pixels with saturation below 0.1 are reported as achromatic: their hue is
meaningless and inverting it has no visible effect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := imaging.LoadImage(args[0])
			if err != nil {
				return err
			}
			h, err := imaging.HueHistogram(img, bins)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d pixels: %d chromatic, %d achromatic\n", h.TotalPixels, h.Chromatic, h.Achromatic)
			for i, b := range h.Dominant {
				if top > 0 && i >= top {
					break
				}
				fmt.Fprintf(out, "  [%5.1f, %5.1f)  %8d  %5.1f%%\n", b.Start, b.End, b.Count, b.Percentage)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&bins, "bins", imaging.DefaultHueBins, "number of hue bins")
	cmd.Flags().IntVar(&top, "top", 10, "number of bins to list (0 = all non-empty)")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info IMAGE",
		Short: "Print image metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := imaging.LoadImageInfo(imaging.NewImageCache(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %dx%d %s\n", args[0], info.Width, info.Height, info.Format)
			fmt.Fprintf(out, "  depth: %s (use --encoding %s)\n", info.ColorDepth, info.SuggestedEncoding())
			fmt.Fprintf(out, "  alpha: %t\n", info.HasAlpha)
			fmt.Fprintf(out, "  size:  %d bytes\n", info.FileSizeBytes)
			return nil
		},
	}
}
