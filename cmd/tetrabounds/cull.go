package main

import (
	"fmt"

	"github.com/solarlune/tetrabounds/debugdraw"
	"github.com/spf13/cobra"
)

type cullOptions struct {
	plotPath string
	width    int
	height   int
	labels   bool
}

func newCullCmd(opts *rootOptions) *cobra.Command {

	cullOpts := &cullOptions{}

	cullCmd := &cobra.Command{
		Use:   "cull [file]",
		Short: "List which objects a camera can see",
		Long: `Build the view frustum of the scene's camera and test every object's bounds against it.
Objects are listed as visible or culled; --plot additionally draws a top-down plot of the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCull(cmd, opts, cullOpts, args[0])
		},
	}

	cullCmd.Flags().StringVarP(&cullOpts.plotPath, "plot", "p", "", "Write a top-down plot to this path (.png or .webp)")
	cullCmd.Flags().IntVar(&cullOpts.width, "width", 512, "Width of the plot in pixels")
	cullCmd.Flags().IntVar(&cullOpts.height, "height", 512, "Height of the plot in pixels")
	cullCmd.Flags().BoolVar(&cullOpts.labels, "labels", true, "Label objects in the plot")

	return cullCmd

}

func runCull(cmd *cobra.Command, opts *rootOptions, cullOpts *cullOptions, filename string) error {

	_, scene, err := opts.load(filename)
	if err != nil {
		return err
	}

	camera, err := opts.camera(scene)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	frustum := camera.Frustum()
	result := scene.Cull(frustum)

	fmt.Fprintf(out, "Culling %q from camera %q\n", scene.Name, camera.Name)
	fmt.Fprintf(out, "Visible: %d of %d\n", len(result.Visible), len(scene.Objects()))

	for _, obj := range result.Visible {
		fmt.Fprintf(out, "  + %s\n", obj.Name)
	}

	fmt.Fprintf(out, "Culled: %d of %d\n", len(result.Culled), len(scene.Objects()))

	for _, obj := range result.Culled {
		fmt.Fprintf(out, "  - %s\n", obj.Name)
	}

	if cullOpts.plotPath == "" {
		return nil
	}

	plotOptions := debugdraw.DefaultOptions()
	plotOptions.Width = cullOpts.width
	plotOptions.Height = cullOpts.height
	plotOptions.Labels = cullOpts.labels
	plotOptions.Rays = scene.Rays

	plot := debugdraw.Plot(scene, camera, plotOptions)

	if err := debugdraw.Save(cullOpts.plotPath, plot.Image); err != nil {
		return fmt.Errorf("writing plot: %w", err)
	}

	fmt.Fprintf(out, "Plot written to %s\n", cullOpts.plotPath)

	return nil

}
