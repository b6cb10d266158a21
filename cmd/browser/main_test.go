package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name: "browser",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: 800},
			&cli.IntFlag{Name: "height", Value: 600},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}},
		},
		Action: run,
	}
}

func TestRunWritesDisplayListJSON(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(htmlPath, []byte(`<div style="width:100px;background-color:rgb(1,2,3)"></div>`), 0644))

	outPath := filepath.Join(dir, "out.json")

	app := newApp()
	err := app.Run(context.Background(), []string{"browser", "--out", outPath, htmlPath})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Contains(t, decoded, "Commands")
}

func TestRunRequiresFileArgument(t *testing.T) {
	app := newApp()
	err := app.Run(context.Background(), []string{"browser"})
	require.Error(t, err)
}
