// Command growstr loads text into growable strings and reports how it
// measures: bytes, codepoints, grapheme clusters, display width and the
// capacity the configured growth policy settled on.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bulga138/growstr"
	"github.com/bulga138/growstr/config"
	"github.com/bulga138/growstr/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("growstr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "Path to a TOML or YAML config file.")
		initConfig  = fs.Bool("init-config", false, "Write a default config file and exit.")
		showVersion = fs.Bool("version", false, "Show version information and exit.")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: growstr [flags] [file ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// --- Handle --version flag ---
	if *showVersion {
		fmt.Fprintf(stdout, "growstr %s\n", version.GetFullVersion())
		return 0
	}

	// --- Handle --init-config flag ---
	if *initConfig {
		path := *configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				fmt.Fprintf(stderr, "Error locating config: %v\n", err)
				return 1
			}
			path = p
		}
		if err := config.SaveConfig(path, config.DefaultConfig()); err != nil {
			fmt.Fprintf(stderr, "Error saving config: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote %s\n", path)
		return 0
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	logger := cfg.Logger(stderr)
	logger.Debug("config loaded", "config", fmt.Sprintf("%+v", cfg))

	opts, err := cfg.Options(logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error building allocator: %v\n", err)
		return 1
	}

	names := fs.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	status := 0
	for _, name := range names {
		if err := report(name, stdin, stdout, opts, logger); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			status = 1
		}
	}
	return status
}

func report(name string, stdin io.Reader, stdout io.Writer, opts []growstr.Option, logger *slog.Logger) (err error) {
	var data []byte
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return err
	}

	s := growstr.New(opts...)
	defer func() {
		if rerr := s.Release(); rerr != nil {
			err = errors.Join(err, fmt.Errorf("release: %w", rerr))
		}
	}()

	if err := s.AppendBytes(data); err != nil {
		var encErr *growstr.EncodingError
		if errors.As(err, &encErr) {
			return fmt.Errorf("not UTF-8: malformed sequence at byte %d", encErr.Offset)
		}
		return err
	}
	logger.Debug("loaded", "name", name, "len", s.Len(), "cap", s.Cap())

	fmt.Fprintf(stdout, "%s\tbytes=%d codepoints=%d graphemes=%d width=%d cap=%d\n",
		name, s.Len(), s.CodepointCount(), s.GraphemeCount(), s.Width(), s.Cap())
	return nil
}
