package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/taigrr/gemini/pkg/math3d"
	"github.com/taigrr/gemini/pkg/models"
	"github.com/taigrr/gemini/pkg/render"
	"github.com/taigrr/gemini/pkg/view3d"
)

func runScene(cmd *cobra.Command, opts *options, cfg sceneConfig) error {
	s, err := newScene(opts, cfg)
	if err != nil {
		return err
	}
	return run(cmd.Context(), opts, s)
}

func newCubeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cube",
		Short: "Spin the default cube",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScene(cmd, opts, sceneConfig{
				meshes:   []*models.Mesh{models.DefaultCube()},
				mode:     view3d.Solid{},
				distance: 4.5,
				pitch:    0.3,
				spin:     math3d.V3(0.4, 0.9, 0),
			})
		},
	}
}

func newDonutCmd(opts *options) *cobra.Command {
	var (
		outer, inner float64
		segments     int
	)
	cmd := &cobra.Command{
		Use:   "donut",
		Short: "Spin a lit torus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if inner <= 0 || outer <= inner {
				return fmt.Errorf("need 0 < inner < outer, got inner %v outer %v", inner, outer)
			}
			if segments < 3 {
				return fmt.Errorf("need at least 3 segments, got %d", segments)
			}
			torus := models.Torus(outer, inner, segments*2, segments).
				WithTransform(math3d.RotationX(0.6))
			return runScene(cmd, opts, sceneConfig{
				meshes:   []*models.Mesh{torus},
				mode:     view3d.Illuminated{Lights: view3d.DefaultLights()},
				distance: 4,
				spin:     math3d.V3(0.7, 1.1, 0),
			})
		},
	}
	cmd.Flags().Float64Var(&outer, "outer", 1.2, "distance from the centre to the middle of the tube")
	cmd.Flags().Float64Var(&inner, "inner", 0.5, "tube radius")
	cmd.Flags().IntVar(&segments, "segments", 12, "segments around the tube; the ring gets twice as many")
	return cmd
}

func newGimbalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gimbal",
		Short: "Show the coordinate axes inside a wireframe cube",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gimbal := models.Gimbal().WithTransform(math3d.UniformScaling(1.5))
			return runScene(cmd, opts, sceneConfig{
				meshes:   []*models.Mesh{models.DefaultCube(), gimbal},
				mode:     view3d.Wireframe{},
				distance: 5,
				pitch:    0.4,
				spin:     math3d.V3(0, 0.6, 0),
			})
		},
	}
}

func newViewCmd(opts *options) *cobra.Command {
	loader := models.NewGLTFLoader()
	cmd := &cobra.Command{
		Use:   "view <model.glb>",
		Short: "Spin a glTF or GLB model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mesh, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			render.Logger().Info("loaded model",
				"file", filepath.Base(args[0]),
				"vertices", mesh.VertexCount(),
				"faces", mesh.FaceCount(),
			)
			_, radius := mesh.BoundingSphere(mesh.Transform)
			return runScene(cmd, opts, sceneConfig{
				meshes:   []*models.Mesh{mesh},
				mode:     view3d.Illuminated{Lights: view3d.DefaultLights()},
				distance: max(2.5*radius, 1),
				spin:     math3d.V3(0, 0.8, 0),
			})
		},
	}
	cmd.Flags().BoolVar(&loader.UseMaterials, "materials", loader.UseMaterials, "colour faces from their base colour factor")
	cmd.Flags().Float64Var(&loader.Size, "size", loader.Size, "scale the model to this size on its largest axis")
	return cmd
}

func newTextCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "text",
		Short: "Animate 2D shapes, text and sprites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("wrap") {
				opts.wrapping = render.WrapAround
			}
			return run(cmd.Context(), opts, newShowcase(opts.fps))
		},
	}
}

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info [model.glb]",
		Short: "Print the terminal size and, given a model, its statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			size, err := render.StdoutSize()
			switch {
			case errors.Is(err, render.ErrNoTerminal):
				fmt.Fprintln(out, "terminal: not a terminal")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "terminal: %dx%d\n", size.X, size.Y)
			}
			canvas, err := opts.canvasSize()
			if err == nil {
				fmt.Fprintf(out, "canvas:   %dx%d\n", canvas.X, canvas.Y)
			}

			if len(args) == 0 {
				return nil
			}
			// Report the model as stored, without fitting it to a box.
			loader := models.NewGLTFLoader()
			loader.Size = 0
			mesh, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			printMeshInfo(out, mesh)
			return nil
		},
	}
}

func printMeshInfo(out io.Writer, m *models.Mesh) {
	lo, hi := m.Bounds()
	_, radius := m.BoundingSphere(m.Transform)
	fmt.Fprintf(out, "model:    %s\n", m.Name)
	fmt.Fprintf(out, "vertices: %d\n", m.VertexCount())
	fmt.Fprintf(out, "faces:    %d\n", m.FaceCount())
	fmt.Fprintf(out, "bounds:   (%.3f, %.3f, %.3f) to (%.3f, %.3f, %.3f)\n", lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
	fmt.Fprintf(out, "radius:   %.3f\n", radius)
}
