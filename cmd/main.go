package main

import (
	"bst/bst"
	"bst/cli"
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-faker/faker/v4"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// maxSeedKey bounds -max: random keys are drawn from a permutation of the whole range.
const maxSeedKey = 1 << 16

var initialKeys = []int{10, 8, 6, 9, 7, 15, 12, 14}

type config struct {
	shouldSeed     bool
	seedNumRecords int
	seedMaxKey     int
	colorMode      string
	showDiff       bool
	verbose        bool
}

// seedKeys draws distinct random keys from [0, max] in random order.
func seedKeys(records, maxKey int) ([]int, error) {
	if records < 0 || maxKey < 0 {
		return nil, fmt.Errorf("records and max must not be negative")
	}
	if maxKey > maxSeedKey {
		return nil, fmt.Errorf("max %d is above the limit of %d", maxKey, maxSeedKey)
	}
	if records-1 > maxKey {
		return nil, fmt.Errorf("cannot draw %d distinct keys from [0, %d]", records, maxKey)
	}
	if records == 0 {
		return nil, nil
	}
	keys, err := faker.RandomInt(0, maxKey, records)
	if err != nil {
		return nil, fmt.Errorf("generating keys: %w", err)
	}
	return keys, nil
}

func useColor(mode string, f *os.File) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	}
	return false, fmt.Errorf("unknown color mode %q", mode)
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

func setupFlags(args []string, output io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("bst", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&cfg.shouldSeed, "seed", false, "Build the tree from random keys created with go-faker instead of the fixed list.")
	fs.IntVar(&cfg.seedNumRecords, "records", 8, "Amount of random keys to seed the tree with.")
	fs.IntVar(&cfg.seedMaxKey, "max", 99, fmt.Sprintf("Largest random key to seed the tree with (at most %d).", maxSeedKey))
	fs.StringVar(&cfg.colorMode, "color", "auto", "Colorize output: auto, always or never.")
	fs.BoolVar(&cfg.showDiff, "diff", false, "Print a diff of the traversal after every deletion.")
	fs.BoolVar(&cfg.verbose, "v", false, "Enable debug logging.")
	fs.Usage = func() {
		fmt.Fprintln(output, "\nBST CLI\n\nArguments:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run returns once the session ends; the logger is synced on every path.
func run(args []string, stdin io.Reader, stdout *os.File) error {
	cfg, err := setupFlags(args, stdout)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Sugar()

	keys := initialKeys
	if cfg.shouldSeed {
		if keys, err = seedKeys(cfg.seedNumRecords, cfg.seedMaxKey); err != nil {
			log.Errorw("seeding tree", "error", err)
			return err
		}
	}
	log.Debugw("building tree", "keys", keys)

	colored, err := useColor(cfg.colorMode, stdout)
	if err != nil {
		log.Errorw("parsing flags", "error", err)
		return err
	}

	tree := bst.New(keys...)
	scanner := bufio.NewScanner(stdin)
	demo := cli.NewCli(scanner, stdout, tree, log, cli.Options{NoColor: !colored, Diff: cfg.showDiff})
	if err := demo.Start(); err != nil {
		log.Errorw("reading input", "error", err)
		return err
	}
	return nil
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
