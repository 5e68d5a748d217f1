package main

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/go-theft-auto/gridlist"
	canvasrenderer "github.com/go-theft-auto/gridlist/backend/canvas"
	"github.com/go-theft-auto/gridlist/internal/scene"
)

func newApp(out io.Writer) *cli.Command {
	sceneFlag := &cli.StringFlag{
		Name:     "scene",
		Aliases:  []string{"s"},
		Usage:    "Scene file (YAML)",
		Required: true,
	}
	scrollFlag := &cli.FloatFlag{
		Name:  "scroll-y",
		Usage: "Override the scene's scroll position",
	}

	return &cli.Command{
		Name:  "gridlist",
		Usage: "Inspect windowed grid layouts",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log grid recomputations",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			gridlist.SetVerbose(cmd.Bool("verbose"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "layout",
				Usage: "Print the resolved config and the row packing",
				Flags: []cli.Flag{sceneFlag},
				Action: func(_ context.Context, cmd *cli.Command) error {
					f, err := loadFrame(cmd)
					if err != nil {
						return err
					}
					return printLayout(out, f)
				},
			},
			{
				Name:  "window",
				Usage: "Print the cells rendered at the scroll position",
				Flags: []cli.Flag{sceneFlag, scrollFlag},
				Action: func(_ context.Context, cmd *cli.Command) error {
					f, err := loadFrame(cmd)
					if err != nil {
						return err
					}
					return printWindow(out, f)
				},
			},
			{
				Name:  "render",
				Usage: "Write an SVG or PDF snapshot of the frame",
				Flags: []cli.Flag{
					sceneFlag,
					scrollFlag,
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Output file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "svg",
						Usage: "Output format: svg or pdf",
					},
					&cli.FloatFlag{
						Name:  "scale",
						Value: 0.25,
						Usage: "Millimetres per pixel",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return runRender(out, cmd)
				},
			},
		},
	}
}

// loadFrame builds a grid from the scene flag and derives one frame.
func loadFrame(cmd *cli.Command) (gridlist.Frame[scene.Photo], error) {
	var zero gridlist.Frame[scene.Photo]

	s, err := scene.Load(cmd.String("scene"))
	if err != nil {
		return zero, err
	}
	if cmd.IsSet("scroll-y") {
		s.Viewport.ScrollY = cmd.Float("scroll-y")
	}
	policy, err := s.Policy()
	if err != nil {
		return zero, fmt.Errorf("scene %s: %w", s.Name, err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if cmd.Bool("verbose") {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	obs := gridlist.NewManualObserver()
	g := gridlist.New(policy, s.Items(), gridlist.WithLogger(logger))
	defer g.Close()

	scroller, element := s.Targets()
	if err := g.Attach(obs, scroller, element); err != nil {
		return zero, err
	}
	// A scene's container is always on screen.
	obs.SetIntersecting(element, true)

	f := g.Frame()
	if f.Err != nil {
		return zero, fmt.Errorf("scene %s: %w", s.Name, f.Err)
	}
	if !f.Ready() {
		return zero, fmt.Errorf("scene %s: container has no width", s.Name)
	}
	return f, nil
}

func printLayout(out io.Writer, f gridlist.Frame[scene.Photo]) error {
	cfg := f.Config
	fmt.Fprintf(out, "columns=%d gap=%g margin=%g column-width=%g items=%d total-height=%g\n",
		cfg.ColumnCount, cfg.Gap, cfg.Margin, cfg.ColumnWidth, len(cfg.Entries), f.TotalHeight)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tOFFSET\tHEIGHT\tCELLS")
	for _, row := range f.Layout.Rows {
		fmt.Fprintf(tw, "%d\t%g\t%g\t%d\n", row.Number, row.Offset, row.Height, row.Count)
	}
	return tw.Flush()
}

func printWindow(out io.Writer, f gridlist.Frame[scene.Photo]) error {
	m := f.Metrics
	vp := gridlist.ViewportFor(m.ScrollerScroll.Y, m.ScrollerSize.Height, f.Config.Margin)
	fmt.Fprintf(out, "scroll-y=%g viewport=[%g, %g] rendered=%d/%d\n",
		m.ScrollerScroll.Y, vp.Top, vp.Bottom, f.Window.Len(), len(f.Layout.Cells))

	row, offset, ok := f.Window.Anchor()
	if !ok {
		fmt.Fprintln(out, "anchor=none")
		return nil
	}
	fmt.Fprintf(out, "anchor row=%d offset=%g padding-top=%g\n", row, offset, f.PaddingTop)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tCOL\tROW\tLOCAL\tOFFSET\tHEIGHT")
	for _, c := range f.Window.Cells {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%g\t%g\n", c.Key, c.Column, c.Row, f.Window.LocalRow(c.Row), c.Offset, c.Height)
	}
	return tw.Flush()
}

func runRender(out io.Writer, cmd *cli.Command) error {
	format, err := canvasrenderer.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}
	f, err := loadFrame(cmd)
	if err != nil {
		return err
	}

	path := cmd.String("out")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer file.Close()

	err = canvasrenderer.Snapshot(file, f, format, canvasrenderer.Options[scene.Photo]{
		Scale:     cmd.Float("scale"),
		CellColor: photoColor,
	})
	if err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(out, "wrote %s (%d of %d cells rendered)\n", path, f.Window.Len(), len(f.Layout.Cells))
	return nil
}

func photoColor(c gridlist.Cell[scene.Photo]) color.Color {
	r, g, b, a := gridlist.UnpackRGBA(scene.ParseColor(c.Item.Color, gridlist.RGBA(0x4a, 0x90, 0xd9, 0xff)))
	return color.RGBA{R: r, G: g, B: b, A: a}
}
