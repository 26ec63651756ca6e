package cli

import (
	"fmt"
	"image"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/hue-invert/internal/imaging"
	"github.com/ironsheep/hue-invert/internal/logger"
)

func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	if a.saveAnim {
		var output string
		if len(args) == 2 {
			output = args[1]
		}
		return a.runAnimation(cmd, args[0], output)
	}
	return a.runInvert(cmd, args[0], args[1], args[2])
}

// parseWindow validates CENTER and RADIUS before any image work is done.
func (a *app) parseWindow(cmd *cobra.Command, center, radius string) (imaging.HueWindow, error) {
	c, err := strconv.ParseFloat(center, 64)
	if err != nil {
		return imaging.HueWindow{}, fmt.Errorf("%w: CENTER %q is not a number", imaging.ErrInvalidArguments, center)
	}
	r, err := strconv.ParseFloat(radius, 64)
	if err != nil {
		return imaging.HueWindow{}, fmt.Errorf("%w: RADIUS %q is not a number", imaging.ErrInvalidArguments, radius)
	}
	mode, err := a.windowMode(cmd)
	if err != nil {
		return imaging.HueWindow{}, err
	}

	w := imaging.HueWindow{Center: c, Radius: r, Mode: mode}
	if err := w.Validate(); err != nil {
		return imaging.HueWindow{}, err
	}
	return w, nil
}

func (a *app) runInvert(cmd *cobra.Command, path, center, radius string) error {
	w, err := a.parseWindow(cmd, center, radius)
	if err != nil {
		return err
	}
	enc, err := a.sampleEncoding(cmd)
	if err != nil {
		return err
	}

	img, err := imaging.LoadImage(path)
	if err != nil {
		return err
	}

	inverted, err := imaging.InvertHue(img, w, enc)
	if err != nil {
		return err
	}
	comparison := imaging.SideBySide(img, inverted, a.cfg.Display.Gap)

	if a.output != "" {
		if err := imaging.SaveImage(a.output, comparison); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s to %s\n", w, a.output)
		return nil
	}

	title := fmt.Sprintf("%s %s", filepath.Base(path), w)
	return newViewer().ShowImage(cmd.Context(), title, a.preview(comparison))
}

func (a *app) preview(img image.Image) image.Image {
	return imaging.FitPreview(img, a.cfg.Display.MaxWidth, a.cfg.Display.MaxHeight)
}

func (a *app) runAnimation(cmd *cobra.Command, path, output string) error {
	sweep, err := a.sweep(cmd)
	if err != nil {
		return err
	}
	enc, err := a.sampleEncoding(cmd)
	if err != nil {
		return err
	}
	workers, err := a.workerCount(cmd)
	if err != nil {
		return err
	}

	img, err := imaging.LoadImage(path)
	if err != nil {
		return err
	}

	frames, err := sweep.Render(cmd.Context(), img, enc, workers)
	if err != nil {
		return err
	}

	if output == "" {
		return newViewer().ShowAnimation(cmd.Context(), filepath.Base(path)+" hue sweep", frames, sweep.Interval)
	}

	logger.Info("saving animation to %s", output)
	if err := imaging.SaveAnimation(output, frames, sweep.Interval); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %d frames to %s\n", len(frames), output)
	return nil
}
