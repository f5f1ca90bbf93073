package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/affine"
	"github.com/akeil/affine/internal/config"
)

func main() {
	affine.SetLogLevel("warning")

	app := kingpin.New("affine", "Apply and visualize 2D affine transformations")
	app.HelpFlag.Short('h')

	var (
		configPath = app.Flag("config", "Path to a TOML config file").Short('c').ExistingFile()
		verbose    = app.Flag("verbose", "Log debug output").Short('v').Bool()
		points     = app.Flag("points", "Initial point as \"x,y\", repeatable").Short('p').Strings()
		steps      = app.Flag("step", "Transformation step as \"op[:param]\", repeatable").Short('s').Strings()
	)

	apply := app.Command("apply", "Print every state of the series").Default()
	format := apply.Flag("format", "Output format").Short('f').Default("text").Enum("text", "json")

	series := app.Command("series", "Render the series to GIF, PNG or PDF")
	var (
		outputs = series.Flag("output", "Output file, type by extension (.gif, .png, .pdf), repeatable").Short('o').Required().Strings()
		state   = series.Flag("state", "State shown in PNG output, negative counts from the end").Default("-1").Int()
	)

	catalog := app.Command("catalog", "Render all operators side by side as GIF")
	catalogOut := catalog.Flag("output", "Output file").Short('o').Default("catalog.gif").String()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, command, runArgs{
		configPath: *configPath,
		verbose:    *verbose,
		points:     *points,
		steps:      *steps,
		format:     *format,
		outputs:    *outputs,
		state:      *state,
		catalogOut: *catalogOut,
	})
	if err != nil {
		printError("Error: %v", err)
		stop()
		os.Exit(1)
	}
}

type runArgs struct {
	configPath string
	verbose    bool
	points     []string
	steps      []string
	format     string
	outputs    []string
	state      int
	catalogOut string
}

func run(ctx context.Context, command string, a runArgs) error {
	settings, err := loadSettings(a.configPath)
	if err != nil {
		return err
	}
	affine.SetLogLevel(settings.LogLevel)
	if a.verbose {
		affine.SetLogLevel("debug")
	}

	in, err := newInput(settings, a.points, a.steps)
	if err != nil {
		return err
	}

	switch command {
	case "apply":
		return doApply(os.Stdout, in, a.format)
	case "series":
		return doSeries(ctx, settings, in, a.outputs, a.state)
	case "catalog":
		return doCatalog(ctx, settings, in, a.catalogOut)
	default:
		return fmt.Errorf("unknown command: %q", command)
	}
}

func loadSettings(path string) (config.Settings, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
