package main

import (
	"fmt"

	"github.com/solarlune/tetrabounds"
	"github.com/spf13/cobra"
)

func newInspectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Display the objects, cameras, and bounds of a scene",
		Long:  "Show each object's transform and world-space bounding volumes, each camera's projection, and the bounds of the whole scene.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, args[0])
		},
	}
}

func runInspect(cmd *cobra.Command, opts *rootOptions, filename string) error {

	library, scene, err := opts.load(filename)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Scene Information")
	fmt.Fprintln(out, "=================")
	fmt.Fprintf(out, "File: %s\n", filename)
	fmt.Fprintf(out, "Scene: %s (%d of %d)\n", scene.Name, sceneIndex(library.Scenes, scene)+1, len(library.Scenes))
	fmt.Fprintf(out, "Objects: %d\n", len(scene.Objects()))
	fmt.Fprintf(out, "Cameras: %d\n", len(scene.Cameras()))
	fmt.Fprintf(out, "Animations: %d\n\n", len(library.Animations))

	if bounds, ok := scene.Bounds(); ok {
		fmt.Fprintln(out, "Scene Bounds:")
		fmt.Fprintf(out, "  Min: %s\n", formatVector(bounds.Min))
		fmt.Fprintf(out, "  Max: %s\n", formatVector(bounds.Max))
		fmt.Fprintf(out, "  Size: %s\n\n", formatVector(bounds.Size()))
	}

	for _, obj := range scene.Objects() {

		t := obj.Transform()

		fmt.Fprintf(out, "Object %q:\n", obj.Name)
		fmt.Fprintf(out, "  Translation: %s\n", formatVector(t.Translation()))
		rotation := t.RotationAxisAngle()
		fmt.Fprintf(out, "  Rotation: %.3f degrees around %s\n", tetrabounds.ToDegrees(rotation.Angle), formatVector(rotation.Axis))
		fmt.Fprintf(out, "  Scale: %s\n", formatVector(t.Scale()))

		if t.IsStatic() {
			fmt.Fprintln(out, "  Static: true")
		}

		if box, ok := obj.WorldBox(); ok {
			fmt.Fprintf(out, "  Box: %s to %s (%d corners)\n", formatVector(box.Min), formatVector(box.Max), len(box.Corners()))
		}

		if sphere, ok := obj.WorldSphere(); ok {
			fmt.Fprintf(out, "  Sphere: center %s, radius %.3f\n", formatVector(sphere.Center), sphere.Radius)
		}

		if !obj.HasVolume() {
			fmt.Fprintln(out, "  No bounding volume")
		}

		for _, name := range obj.Properties.Names() {
			fmt.Fprintf(out, "  Property %s: %v\n", name, obj.Properties.Get(name).Value)
		}

	}

	for _, camera := range scene.Cameras() {

		fmt.Fprintf(out, "Camera %q:\n", camera.Name)
		fmt.Fprintf(out, "  Position: %s\n", formatVector(camera.Transform().Translation()))
		fmt.Fprintf(out, "  Looking: %s\n", formatVector(camera.Transform().Forward()))

		if camera.Perspective() {
			fmt.Fprintf(out, "  Perspective: %.1f degree field of view\n", camera.FieldOfView())
		} else {
			fmt.Fprintf(out, "  Orthographic: %.3f units across\n", camera.OrthoScale())
		}

		fmt.Fprintf(out, "  Aspect Ratio: %.3f\n", camera.AspectRatio())
		fmt.Fprintf(out, "  Clip Range: %.3f to %.3f\n", camera.Near(), camera.Far())

	}

	return nil

}

func sceneIndex(scenes []*tetrabounds.Scene, scene *tetrabounds.Scene) int {
	for i, s := range scenes {
		if s == scene {
			return i
		}
	}
	return -1
}
