package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/solarlune/tetrabounds"
	"github.com/spf13/cobra"
)

type simulateOptions struct {
	frames     int
	dt         float64
	finishMode string
	animations []string
}

var finishModes = map[string]tetrabounds.FinishMode{
	"loop":     tetrabounds.FinishModeLoop,
	"pingpong": tetrabounds.FinishModePingPong,
	"stop":     tetrabounds.FinishModeStop,
}

func newSimulateCmd(opts *rootOptions) *cobra.Command {

	simOpts := &simulateOptions{}

	simulateCmd := &cobra.Command{
		Use:   "simulate [file]",
		Short: "Play back a scene's animations and report transform notifications",
		Long: `Play the scene file's animations frame by frame. Each frame's changes are made in one batched update,
so every moved object notifies its listeners once; the notifications and any change in which objects the
camera can see are reported per frame.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, opts, simOpts, args[0])
		},
	}

	simulateCmd.Flags().IntVarP(&simOpts.frames, "frames", "n", 60, "Number of frames to simulate")
	simulateCmd.Flags().Float64Var(&simOpts.dt, "dt", 1.0/60.0, "Time step per frame in seconds")
	simulateCmd.Flags().StringVar(&simOpts.finishMode, "finish", "loop", "What animations do when they end: loop, pingpong, or stop")
	simulateCmd.Flags().StringSliceVarP(&simOpts.animations, "animation", "a", nil, "Animations to play (defaults to all of them)")

	return simulateCmd

}

func runSimulate(cmd *cobra.Command, opts *rootOptions, simOpts *simulateOptions, filename string) error {

	library, scene, err := opts.load(filename)
	if err != nil {
		return err
	}

	finishMode, ok := finishModes[strings.ToLower(simOpts.finishMode)]
	if !ok {
		return fmt.Errorf("unknown finish mode %q", simOpts.finishMode)
	}

	names := simOpts.animations
	if len(names) == 0 {
		for name := range library.Animations {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	players := []*tetrabounds.AnimationPlayer{}

	for _, name := range names {
		anim, exists := library.Animations[name]
		if !exists {
			return fmt.Errorf("animation %q not found", name)
		}
		player := tetrabounds.NewAnimationPlayer(scene)
		player.FinishMode = finishMode
		player.Play(anim)
		players = append(players, player)
	}

	if len(players) == 0 {
		return fmt.Errorf("no animations to play in %s", filename)
	}

	// Visibility is only reported if there's a camera to see with.
	camera, _ := opts.camera(scene)

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Simulating %q: %d animations, %d frames of %.4fs\n", scene.Name, len(players), simOpts.frames, simOpts.dt)

	visible := map[*tetrabounds.Object]bool{}
	if camera != nil {
		for _, obj := range scene.Cull(camera.Frustum()).Visible {
			visible[obj] = true
		}
	}

	changes := map[*tetrabounds.Object]int{}
	for _, obj := range scene.Objects() {
		changes[obj] = obj.Changes()
	}

	total := 0

	for frame := 1; frame <= simOpts.frames; frame++ {

		// Nested inside one outer update, objects animated by several players still notify once.
		scene.Update(func() {
			for _, player := range players {
				player.Update(simOpts.dt)
			}
		})

		notified := 0
		for _, obj := range scene.Objects() {
			notified += obj.Changes() - changes[obj]
			changes[obj] = obj.Changes()
		}
		total += notified

		fmt.Fprintf(out, "Frame %d: %d notified", frame, notified)

		if camera == nil {
			fmt.Fprintln(out)
			continue
		}

		result := scene.Cull(camera.Frustum())
		fmt.Fprintf(out, ", %d visible\n", len(result.Visible))

		for _, obj := range result.Visible {
			if !visible[obj] {
				fmt.Fprintf(out, "  + %s\n", obj.Name)
				visible[obj] = true
			}
		}

		for _, obj := range result.Culled {
			if visible[obj] {
				fmt.Fprintf(out, "  - %s\n", obj.Name)
				delete(visible, obj)
			}
		}

	}

	fmt.Fprintf(out, "Total notifications: %d\n", total)

	return nil

}
