package main

import (
	"errors"
	"fmt"

	"github.com/solarlune/tetrabounds"
	"github.com/spf13/cobra"
)

type raycastOptions struct {
	origin    []float64
	direction []float64
	first     bool
}

func newRaycastCmd(opts *rootOptions) *cobra.Command {

	rayOpts := &raycastOptions{}

	raycastCmd := &cobra.Command{
		Use:   "raycast [file]",
		Short: "Cast rays at the objects of a scene",
		Long: `Cast the rays stored in the scene file at every object's bounds, listing hits from nearest to furthest.
A single ray can be given with --origin and --dir instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRaycast(cmd, opts, rayOpts, args[0])
		},
	}

	raycastCmd.Flags().Float64SliceVar(&rayOpts.origin, "origin", nil, "Origin of the ray, as x,y,z")
	raycastCmd.Flags().Float64SliceVar(&rayOpts.direction, "dir", []float64{0, 0, -1}, "Direction of the ray, as x,y,z")
	raycastCmd.Flags().BoolVar(&rayOpts.first, "first", false, "Only report the nearest hit of each ray")

	return raycastCmd

}

func runRaycast(cmd *cobra.Command, opts *rootOptions, rayOpts *raycastOptions, filename string) error {

	_, scene, err := opts.load(filename)
	if err != nil {
		return err
	}

	rays := scene.Rays

	if cmd.Flags().Changed("origin") || cmd.Flags().Changed("dir") {

		origin := []float64{0, 0, 0}
		if rayOpts.origin != nil {
			origin = rayOpts.origin
		}

		o, err := vectorFromFlag("origin", origin)
		if err != nil {
			return err
		}

		d, err := vectorFromFlag("dir", rayOpts.direction)
		if err != nil {
			return err
		}

		ray, err := tetrabounds.NewRay(o, d)
		if err != nil {
			return fmt.Errorf("--dir: %w", err)
		}

		rays = []tetrabounds.Ray{ray}

	}

	if len(rays) == 0 {
		return errors.New("no rays to cast; add rays to the scene file or pass --origin and --dir")
	}

	out := cmd.OutOrStdout()

	for i, ray := range rays {

		fmt.Fprintf(out, "Ray %d: from %s towards %s\n", i+1, formatVector(ray.Origin()), formatVector(ray.Direction()))

		hits := scene.Raycast(ray)

		if len(hits) == 0 {
			fmt.Fprintln(out, "  No hits")
			continue
		}

		if rayOpts.first {
			hits = hits[:1]
		}

		for _, hit := range hits {
			fmt.Fprintf(out, "  %s at distance %.3f, %s\n", hit.Object.Name, hit.Distance, formatVector(hit.Position))
		}

	}

	return nil

}
