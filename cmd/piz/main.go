// piz decodes a PiZ archive into the bytes it references in the digits of
// pi.
//
//  piz [flags] [archive]
//
// The archive defaults to example.piz and the output to example.out.
// Archives ending in .zst or .lz4 are decompressed while reading.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"

	"github.com/calebcase/piz"
	"github.com/calebcase/piz/config"
)

const defaultArchive = "example.piz"

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) (err error) {
	var (
		configPath  string
		output      string
		workers     int
		tail        uint64
		limit       uint64
		atomic      bool
		checksum    bool
		dump        bool
		logLevel    string
		showVersion bool
	)

	defaults := config.Default()

	flagSet := pflag.NewFlagSet("piz", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&configPath, "config", "c", "", "YAML config file (default $"+config.EnvVar+")")
	flagSet.StringVarP(&output, "output", "o", defaults.Output, "destination file")
	flagSet.IntVarP(&workers, "workers", "w", defaults.Workers, "extraction workers")
	flagSet.Uint64Var(&tail, "tail", defaults.Tail, "BBP tail truncation constant")
	flagSet.Uint64Var(&limit, "limit", defaults.Limit, "largest literal accepted in the archive body")
	flagSet.BoolVar(&atomic, "atomic", defaults.Atomic, "write to a temporary file and rename on success")
	flagSet.BoolVar(&checksum, "checksum", defaults.Checksum, "log the BLAKE3 digest of the output")
	flagSet.BoolVar(&dump, "dump", false, "log the header and block plan")
	flagSet.StringVar(&logLevel, "log-level", defaults.LogLevel, "debug, info, warn or error")
	flagSet.BoolVar(&showVersion, "version", false, "print the version and exit")

	err = flagSet.Parse(args)
	if err != nil {
		if err == pflag.ErrHelp {
			return nil
		}

		return err
	}

	if showVersion {
		fmt.Fprintf(stderr, "piz %s\n", version())

		return nil
	}

	archivePath := defaultArchive

	switch rest := flagSet.Args(); len(rest) {
	case 0:
	case 1:
		archivePath = rest[0]
	default:
		return fmt.Errorf("unexpected argument: %s", rest[1])
	}

	cfg := defaults
	if path := config.Path(configPath); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
	}

	if flagSet.Changed("output") {
		cfg.Output = output
	}
	if flagSet.Changed("workers") {
		cfg.Workers = workers
	}
	if flagSet.Changed("tail") {
		cfg.Tail = tail
	}
	if flagSet.Changed("limit") {
		cfg.Limit = limit
	}
	if flagSet.Changed("atomic") {
		cfg.Atomic = atomic
	}
	if flagSet.Changed("checksum") {
		cfg.Checksum = checksum
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return decode(logger, archivePath, cfg, dump, stderr)
}

func decode(logger *slog.Logger, archivePath string, cfg config.Config, dump bool, stderr io.Writer) (err error) {
	src, err := openArchive(archivePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); err == nil {
			err = cerr
		}
	}()

	plan, err := piz.Parse(src, piz.Options{
		Tail:         cfg.Tail,
		Limit:        cfg.Limit,
		Workers:      cfg.Workers,
		KeepMetadata: dump,
		Log:          logger,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", archivePath, err)
	}

	logger.Info("archive",
		"path", archivePath,
		"read", plan.Header.Read.String(),
		"calc", plan.Header.Calc.String(),
		"blocks", len(plan.Storage),
		"size", plan.Storage.Size(),
	)

	if dump {
		fmt.Fprintf(stderr, "header: %s", spew.Sdump(plan.Header))
		for _, line := range plan.Metadata {
			fmt.Fprintf(stderr, "metadata: %q\n", line)
		}
		fmt.Fprintf(stderr, "storage: %s", spew.Sdump(plan.Storage))
	}

	out, err := createOutput(cfg.Output, cfg.Atomic, cfg.Checksum)
	if err != nil {
		return err
	}

	n, err := plan.WriteTo(out)
	if err != nil {
		if aerr := out.Abort(); aerr != nil {
			logger.Warn("abort output", "path", cfg.Output, "error", aerr)
		}

		return fmt.Errorf("%s: %w", archivePath, err)
	}

	err = out.Commit()
	if err != nil {
		return err
	}

	attrs := []any{"path", cfg.Output, "bytes", n}
	if cfg.Checksum {
		attrs = append(attrs, "blake3", out.Sum())
	}

	logger.Info("decoded", attrs...)

	return nil
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "(devel)"
	}

	return info.Main.Version
}
