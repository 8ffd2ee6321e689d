package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/gltfkit/gltf"
	"github.com/gltfkit/gltf/reader"
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	case "info":
		infoCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "gltfkit CLI\n\nUsage:\n  gltfkit validate [-v] file.gltf\n  gltfkit info [-v] file.gltf")
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fatalf("logger: %v", err)
	}
	return logger
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var verbose bool
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	logger := newLogger(verbose)
	defer logger.Sync()

	doc, err := gltf.Load(fs.Arg(0), gltf.WithLogger(logger))
	if err != nil {
		fatalf("%v", err)
	}
	warnings, errs := doc.Validate()
	for _, d := range warnings {
		fmt.Printf("%s %s: %s\n", color.YellowString("warning"), d.Path, d.Message)
	}
	for _, d := range errs {
		fmt.Printf("%s %s: %s\n", color.RedString("error"), d.Path, d.Message)
	}
	if len(errs) > 0 {
		os.Exit(1)
	}
	fmt.Println(color.GreenString("ok"))
}

func infoCmd(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	var verbose bool
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	logger := newLogger(verbose)
	defer logger.Sync()

	doc, _, err := gltf.Import(fs.Arg(0), gltf.WithLogger(logger))
	if err != nil {
		fatalf("%v", err)
	}

	a := doc.Asset
	fmt.Printf("%s version=%s generator=%q\n", color.CyanString("asset"), a.Version, a.Generator)
	fmt.Printf("scenes=%d nodes=%d meshes=%d materials=%d textures=%d animations=%d skins=%d\n",
		len(doc.Scenes), len(doc.Nodes), len(doc.Meshes),
		len(doc.Materials), len(doc.Textures), len(doc.Animations), len(doc.Skins))

	for mi := range doc.Meshes {
		m := &doc.Meshes[mi]
		for pi := range m.Primitives {
			p := reader.For(doc, &m.Primitives[pi])
			pos, err := p.Positions()
			if err != nil {
				continue
			}
			min, max := reader.PositionBounds(pos)
			fmt.Printf("mesh %d primitive %d: %d vertices, bounds %v .. %v\n",
				mi, pi, pos.Count(), min, max)
		}
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("gltfkit:"), fmt.Sprintf(format, a...))
	os.Exit(1)
}
