// fireconv converts Cocos Creator scene files into cocos2d-x scene
// documents or construction code.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/fireconv/internal/config"
	"github.com/Faultbox/fireconv/internal/convert"
	"github.com/Faultbox/fireconv/internal/logger"
	"github.com/Faultbox/fireconv/internal/scene"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "convert", "c":
		cmdConvert(args)
	case "tree", "t":
		cmdTree(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fireconv - Cocos Creator scene converter

Usage:
  fireconv <command> [options] <scene.fire>...

Commands:
  convert [options] <scene.fire>...  Convert scenes (json or code output)
  tree [options] <scene.fire>        Print the resolved node tree
  config [options] [-save]           Print the effective configuration, or
                                     save it to the user config directory
  help                               Show this help

Options:
  -config <file>          Config file (default ./fireconv.yaml)
  -cocospath <prefix>     Prefix for asset paths in the output
  -creatorassets <dir>    Creator built-in assets directory
  -jsonpath <dir>         Output directory
  -format json|code       Output format
  -debug                  Enable debug logging

Examples:
  fireconv convert -cocospath creator/ -creatorassets creator_project/temp/ -jsonpath json/ creator_project/assets/*.fire
  fireconv tree creator_project/assets/main.fire
  fireconv config -format code -save`)
}

// setup parses the shared flags plus any registered by extra, loads the
// config and starts logging.
func setup(name string, args []string, extra func(*flag.FlagSet)) (*config.Config, *flag.FlagSet) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	if extra != nil {
		extra(fs)
	}
	flags, err := config.ParseFlags(fs, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logOptions(cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, fs
}

func logOptions(cfg *config.Config) logger.Options {
	return logger.Options{
		Level:      cfg.Logging.Level,
		Console:    os.Stderr,
		File:       cfg.Logging.LogFile,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}
}

func newConverter(cfg *config.Config) *convert.Converter {
	format, err := convert.ParseFormat(cfg.Output.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return convert.New(convert.Options{
		AssetPath:     cfg.Paths.AssetPath,
		CreatorAssets: cfg.Paths.CreatorAssets,
		OutputDir:     cfg.Paths.OutputDir,
		Format:        format,
		Indent:        cfg.Output.Indent,
		Design: scene.DesignResolution{
			Width:  cfg.Output.DesignWidth,
			Height: cfg.Output.DesignHeight,
		},
	}, logger.Log)
}

func cmdConvert(args []string) {
	cfg, fs := setup("convert", args, nil)
	defer logger.Sync()

	inputs, err := expandInputs(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: fireconv convert [options] <scene.fire>...")
		os.Exit(1)
	}

	outputs, err := newConverter(cfg).ConvertAll(inputs)
	for _, out := range outputs {
		fmt.Println(out)
	}
	if err != nil {
		logger.Log.Error("batch finished with errors",
			zap.Int("converted", len(outputs)),
			zap.Int("failed", len(inputs)-len(outputs)))
		os.Exit(1)
	}
}

func cmdTree(args []string) {
	cfg, fs := setup("tree", args, nil)
	defer logger.Sync()

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: fireconv tree [options] <scene.fire>")
		os.Exit(1)
	}

	ctx, root, err := newConverter(cfg).Build(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printTree(os.Stdout, root)
	fmt.Printf("\nDesign resolution: %gx%g (fit width: %t, fit height: %t)\n",
		ctx.Design.Width, ctx.Design.Height, ctx.Design.FitWidth, ctx.Design.FitHeight)
}

func cmdConfig(args []string) {
	var save bool
	cfg, _ := setup("config", args, func(fs *flag.FlagSet) {
		fs.BoolVar(&save, "save", false, "Write the effective config to the user config directory")
	})

	if save {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

// expandInputs expands glob patterns the shell left untouched and drops
// duplicates, keeping the first occurrence.
func expandInputs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, arg := range args {
		matches := []string{arg}
		if strings.ContainsAny(arg, "*?[") {
			m, err := filepath.Glob(arg)
			if err != nil {
				return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
			}
			sort.Strings(m)
			matches = m
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

// printTree writes one line per node, indented by depth.
func printTree(w io.Writer, root *scene.Node) {
	root.Walk(func(n *scene.Node, depth int) {
		fmt.Fprintf(w, "%s%s %q\n", strings.Repeat("  ", depth), n.Type, n.Name)
	})
}
