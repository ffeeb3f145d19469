package cli

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/d0sboots/maze-project/pkg/cache"
	"github.com/d0sboots/maze-project/pkg/maze"
	"github.com/d0sboots/maze-project/pkg/render/graphdot"
	"github.com/d0sboots/maze-project/pkg/render/raster"
	"github.com/d0sboots/maze-project/pkg/render/text"
)

// artifactTTL is how long rendered artifacts stay in the file cache.
const artifactTTL = 7 * 24 * time.Hour

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	width         int
	height        int
	weave         float64
	seed          string
	output        string
	noCache       bool
	extraOpenings int
	render        renderOpts
}

// renderOpts holds the rendering flags shared by generate and serve.
type renderOpts struct {
	format       string // "text", "png", "svg" or "dot"
	space        string // text space style
	cellWidth    int
	wallWidth    int
	passageWidth int
	palette      string
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"text": true, "png": true, "svg": true, "dot": true}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		width:  c.Config.Generate.Width,
		height: c.Config.Generate.Height,
		weave:  c.Config.Generate.Weave,
		render: renderOpts{
			format:       c.Config.Render.Format,
			space:        c.Config.Render.Space,
			cellWidth:    c.Config.Render.CellWidth,
			wallWidth:    c.Config.Render.WallWidth,
			passageWidth: c.Config.Render.PassageWidth,
			palette:      c.Config.Render.Palette,
		},
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and render it",
		Long: `Generate a random weave maze and render it to the requested format.

With no --seed, a random seed is generated and printed so the maze can be
reproduced later. The same seed and dimensions always produce the same maze.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormats[opts.render.format] {
				return fmt.Errorf("invalid format: %s (must be 'text', 'png', 'svg', or 'dot')", opts.render.format)
			}
			return c.runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "W", opts.width, "maze width in cells")
	cmd.Flags().IntVarP(&opts.height, "height", "H", opts.height, "maze height in cells")
	cmd.Flags().Float64Var(&opts.weave, "weave", opts.weave, "weave fraction in [0, 1): expected crossings per wall step")
	cmd.Flags().StringVarP(&opts.seed, "seed", "s", "", "seed string (random if empty)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout for text, maze.<format> otherwise)")
	cmd.Flags().StringVarP(&opts.render.format, "format", "f", opts.render.format, "output format: text (default), png, svg, dot")
	cmd.Flags().StringVar(&opts.render.space, "space", opts.render.space, "text space style: plain (default), nbsp, dot")
	cmd.Flags().IntVar(&opts.render.cellWidth, "cell-width", opts.render.cellWidth, "PNG cell size in pixels")
	cmd.Flags().IntVar(&opts.render.wallWidth, "wall-width", opts.render.wallWidth, "PNG wall thickness in pixels")
	cmd.Flags().IntVar(&opts.render.passageWidth, "passage-width", opts.render.passageWidth, "PNG passage width in pixels")
	cmd.Flags().StringVar(&opts.render.palette, "palette", opts.render.palette, "PNG palette: bg,wall,passage,path hex colors")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().IntVar(&opts.extraOpenings, "extra-openings", 0, "extra border openings besides entrance and exit")

	return cmd
}

// runGenerate generates the maze (or pulls the rendered artifact from the
// cache) and writes it to the chosen destination.
func (c *CLI) runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	seed := opts.seed
	if seed == "" {
		seed = newSeed()
		printKeyValue("seed", seed)
	}

	if opts.extraOpenings > 0 {
		logger.Warn("--extra-openings is accepted but not applied yet; mazes keep a single entrance and exit")
	}

	cfg := maze.Config{
		Width:         opts.width,
		Height:        opts.height,
		WeaveFraction: opts.weave,
		Seed:          seed,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	artifacts, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer artifacts.Close()

	keyer := cache.NewDefaultKeyer()
	gridKey := keyer.GridKey(cfg.Width, cfg.Height, cfg.WeaveFraction, cfg.Seed)
	artifactKey := keyer.ArtifactKey(gridKey, opts.render.keyOpts())

	data, hit, err := artifacts.Get(ctx, artifactKey)
	if err != nil {
		logger.Debugf("Cache read failed: %v", err)
	}
	if hit {
		logger.Debug("Using cached artifact")
	} else {
		p := newProgress(logger)
		g, err := maze.Generate(cfg)
		if err != nil {
			return err
		}
		p.done(fmt.Sprintf("Generated %dx%d maze with %d crossings", g.Width, g.Height, g.WeaveCount()))

		data, err = renderArtifact(g, opts.render)
		if err != nil {
			return err
		}
		logger.Debugf("Rendered %s: %d bytes", opts.render.format, len(data))

		if err := artifacts.Set(ctx, artifactKey, data, artifactTTL); err != nil {
			logger.Debugf("Cache write failed: %v", err)
		}
	}

	return writeArtifact(data, opts.render.format, opts.output)
}

// keyOpts maps the render flags onto cache key options.
func (o renderOpts) keyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:       o.format,
		Space:        o.space,
		CellWidth:    o.cellWidth,
		WallWidth:    o.wallWidth,
		PassageWidth: o.passageWidth,
		Palette:      o.palette,
	}
}

// renderArtifact dispatches to the renderer for the requested format.
func renderArtifact(g *maze.Grid, opts renderOpts) ([]byte, error) {
	switch opts.format {
	case "text":
		space, err := text.ParseSpace(opts.space)
		if err != nil {
			return nil, err
		}
		return []byte(text.Render(g, text.Options{Space: space})), nil
	case "png":
		ro := raster.Options{
			CellWidth:    opts.cellWidth,
			WallWidth:    opts.wallWidth,
			PassageWidth: opts.passageWidth,
		}
		if opts.palette != "" {
			pal, err := raster.ParsePalette(opts.palette)
			if err != nil {
				return nil, err
			}
			ro.Palette = pal
		}
		return raster.RenderPNG(g, ro)
	case "svg":
		return graphdot.RenderSVG(graphdot.ToDOT(g))
	case "dot":
		return []byte(graphdot.ToDOT(g)), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", opts.format)
	}
}

// writeArtifact sends text to stdout by default and binary formats to a
// file, falling back to maze.<format> when no output path is given.
func writeArtifact(data []byte, format, output string) error {
	if output == "" {
		if format == "text" {
			_, err := os.Stdout.Write(data)
			return err
		}
		output = "maze." + format
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}
	printSuccess("Generated maze")
	printFile(output)
	return nil
}

// newSeed produces a short random seed, 12 URL-safe base64 characters from
// OS entropy.
func newSeed() string {
	var buf [9]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// fixed seed rather than aborting.
		return "fallback-seed"
	}
	return base64.RawURLEncoding.EncodeToString(buf[:])
}
