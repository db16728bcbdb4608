package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-faker/faker/v4"
	"github.com/npillmayer/multiway/btree"
	"github.com/npillmayer/multiway/keyfile"
	"github.com/npillmayer/multiway/preorder"
	"github.com/npillmayer/multiway/report"
	"github.com/npillmayer/multiway/validate"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func tracer() tracing.Trace {
	return tracing.Select("multiway")
}

type options struct {
	configFile string
	keyFile    string
	decodeFile string
	encodeFile string
	random     int
	cfg        Config
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	fs := flag.NewFlagSet("btcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := &options{}
	def := defaultConfig()
	fs.StringVar(&opts.configFile, "config", "", "TOML configuration file")
	fs.StringVar(&opts.keyFile, "file", "", "read keys from a text file")
	fs.StringVar(&opts.decodeFile, "decode", "", "read keys from an encoded preorder stream")
	fs.StringVar(&opts.encodeFile, "encode", "", "write the preorder emission of the tree to a file")
	fs.IntVar(&opts.random, "random", 0, "add n distinct random keys (not reproducible)")
	degree := fs.Int("t", def.Degree, "minimum degree of the tree")
	mode := fs.String("mode", def.Mode, "insert | rebuild")
	format := fs.String("format", def.Format, "console | html | dot")
	color := fs.String("color", def.Color, "auto | always | never")
	compress := fs.String("compress", def.Compression, "none | snappy | lz4")
	trace := fs.String("trace", def.Trace, "error | info | debug")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return nil, nil, err
	}
	fs.Visit(func(f *flag.Flag) { // explicit flags override the config file
		switch f.Name {
		case "t":
			cfg.Degree = *degree
		case "mode":
			cfg.Mode = *mode
		case "format":
			cfg.Format = *format
		case "color":
			cfg.Color = *color
		case "compress":
			cfg.Compression = *compress
		case "trace":
			cfg.Trace = *trace
		}
	})
	opts.cfg = cfg
	return opts, fs.Args(), cfg.check()
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, rest, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "btcheck: %v\n", err)
		return 2
	}
	setupTracing(opts.cfg.Trace)
	keys, err := collectKeys(opts, rest)
	if err != nil {
		fmt.Fprintf(stderr, "btcheck: %v\n", err)
		return 2
	}
	tree, err := buildTree(opts.cfg, keys)
	if err != nil {
		fmt.Fprintf(stderr, "btcheck: %v\n", err)
		return 1
	}
	if opts.encodeFile != "" {
		if err := encodeTree(opts.encodeFile, tree, opts.cfg.Compression); err != nil {
			fmt.Fprintf(stderr, "btcheck: %v\n", err)
			return 1
		}
	}
	rep := validate.Tree(tree)
	if err := render(stdout, tree, rep, opts.cfg); err != nil {
		fmt.Fprintf(stderr, "btcheck: %v\n", err)
		return 1
	}
	if !rep.OK {
		return 1
	}
	return 0
}

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	l, _ := traceLevel(level)
	gtrace.CoreTracer.SetTraceLevel(l)
}

// collectKeys gathers keys from all configured sources, in the order
// decoded stream, key file, random keys, command line.
func collectKeys(opts *options, args []string) ([]btree.Key, error) {
	var keys []btree.Key
	if opts.decodeFile != "" {
		f, err := os.Open(opts.decodeFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		decoded, err := preorder.Decode(f)
		if err != nil {
			return nil, err
		}
		keys = append(keys, decoded...)
	}
	if opts.keyFile != "" {
		loaded, err := keyfile.Load(opts.keyFile)
		if err != nil {
			return nil, err
		}
		keys = append(keys, loaded...)
	}
	if opts.random > 0 {
		generated, err := randomKeys(opts.random)
		if err != nil {
			return nil, err
		}
		keys = append(keys, generated...)
	}
	if len(args) > 0 {
		parsed, err := keyfile.ParseString(strings.Join(args, " "))
		if err != nil {
			return nil, err
		}
		keys = append(keys, parsed...)
	}
	tracer().Infof("btcheck: %d keys collected", len(keys))
	return keys, nil
}

// randomKeys draws n distinct random keys from [-10n, 10n].
func randomKeys(n int) ([]btree.Key, error) {
	ints, err := faker.RandomInt(-10*n, 10*n, n)
	if err != nil {
		return nil, fmt.Errorf("generating %d random keys: %w", n, err)
	}
	keys := make([]btree.Key, len(ints))
	for i, v := range ints {
		keys[i] = btree.Key(v)
	}
	return keys, nil
}

func buildTree(cfg Config, keys []btree.Key) (*btree.Tree, error) {
	tcfg := btree.DegreeConfig(cfg.Degree)
	if cfg.Mode == "rebuild" {
		return preorder.Build(keys, tcfg)
	}
	tree, err := btree.New(tcfg)
	if err != nil {
		return nil, err
	}
	if added := tree.InsertAll(keys...); added < len(keys) {
		tracer().Infof("btcheck: ignored %d duplicate keys", len(keys)-added)
	}
	return tree, nil
}

func encodeTree(name string, tree *btree.Tree, compression string) error {
	c, err := preorder.ParseCompression(compression)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := preorder.EncodeTree(f, tree, preorder.Options{Compression: c}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func render(w io.Writer, tree *btree.Tree, rep *validate.Report, cfg Config) error {
	switch cfg.Format {
	case "html":
		return report.HTML(w, tree, rep)
	case "dot":
		return report.Dot(w, tree)
	}
	var config *report.Config
	if f, ok := w.(*os.File); ok {
		config = report.ConfigFromTerminal(int(f.Fd()))
	} else {
		config = &report.Config{LineWidth: 65}
	}
	switch cfg.Color {
	case "always":
		config.Color = true
	case "never":
		config.Color = false
	}
	return report.Console(w, tree, rep, config)
}
