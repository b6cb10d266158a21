// Command browser runs the full pipeline (HTML parse, cascade, layout,
// display-list construction) over one HTML file and writes the
// resulting display list as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"

	"github.com/carlosmndzg/ferrum"
	"github.com/carlosmndzg/ferrum/ferrumerr"
	"github.com/carlosmndzg/ferrum/logging"
)

func main() {
	app := &cli.Command{
		Name:      "browser",
		Usage:     "render an HTML document to a JSON display list",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: 800, Usage: "viewport width in device pixels"},
			&cli.IntFlag{Name: "height", Value: 600, Usage: "viewport height in device pixels"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the display list to `FILE` instead of stdout"},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "browser: %v\n", err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	path := cmd.Args().Get(0)
	if path == "" {
		return fmt.Errorf("missing FILE argument: %w", ferrumerr.ErrDriver)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, ferrumerr.ErrDriver)
	}

	width := float64(cmd.Int("width"))
	height := float64(cmd.Int("height"))

	logging.Infof("rendering %s at %gx%g", path, width, height)

	doc, err := ferrum.Render(string(content), filepath.Dir(path), width, height)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(doc.DisplayList, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding display list: %w", err)
	}

	out := os.Stdout
	if outPath := cmd.String("out"); outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}

	_, err = out.Write(append(encoded, '\n'))
	return err
}

