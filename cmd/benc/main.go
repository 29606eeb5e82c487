// benc - bencode inspection CLI
//
// Usage:
//
//	benc dump [file]       Decode and print the value tree
//	benc to-json [file]    Decode and print as JSON
//	benc watch <file>      Re-decode and print on every change
//	benc version           Print version info
//
// Files ending in .gz are decompressed transparently.
// If no file is given (or "-"), reads from stdin.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Neumenon/benc/benc"
	"github.com/Neumenon/benc/internal/inspect"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	// Parse flags and file argument
	compact := false
	maxDepth := 0
	configPath := ""
	fileArg := ""
	for _, arg := range os.Args[2:] {
		switch {
		case arg == "--compact":
			compact = true
		case strings.HasPrefix(arg, "--max-depth="):
			n, err := parseIntArg(arg, "--max-depth=")
			if err != nil {
				fatal("bad --max-depth: %v", err)
			}
			maxDepth = n
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		default:
			if !strings.HasPrefix(arg, "-") || arg == "-" {
				fileArg = arg
			}
		}
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fatal("%v", err)
	}
	if compact {
		cfg.Compact = true
	}
	if maxDepth > 0 {
		cfg.MaxDepth = maxDepth
	}
	opts := benc.DecodeOptions{MaxDepth: cfg.MaxDepth}

	switch cmd {
	case "dump":
		cmdDump(fileArg, opts)
	case "to-json":
		cmdToJSON(fileArg, opts, cfg.Compact)
	case "watch":
		if fileArg == "" || fileArg == "-" {
			fatal("watch needs a file argument")
		}
		cmdWatch(fileArg, opts)
	case "version", "-v", "--version":
		fmt.Printf("benc %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `benc - bencode inspection CLI

Usage:
  benc dump [options] [file]       Decode and print the value tree
  benc to-json [options] [file]    Decode and print as JSON
  benc watch [options] <file>      Re-decode and print on every change
  benc version                     Print version info

Options:
  --compact           One-line JSON output (to-json)
  --max-depth=N       Container nesting limit (default 1000)
  --config=path       Read defaults from a TOML config file

Files ending in .gz are decompressed transparently.
If no file is given, reads from stdin.

Examples:
  benc dump ubuntu.torrent
  curl -s https://example.org/file.torrent | benc to-json --compact
  benc watch --max-depth=64 state.benc
`)
}

// cmdDump: decode and print the value tree.
func cmdDump(path string, opts benc.DecodeOptions) {
	v := decodeFile(path, opts)
	fmt.Println(benc.DumpString(v))
}

// cmdToJSON: decode and print JSON.
func cmdToJSON(path string, opts benc.DecodeOptions, compact bool) {
	v := decodeFile(path, opts)

	var out []byte
	var err error
	if compact {
		out, err = benc.ToJSON(v)
	} else {
		out, err = benc.ToJSONIndent(v)
	}
	if err != nil {
		fatal("render JSON: %v", err)
	}
	fmt.Println(string(out))
}

// cmdWatch: re-decode and dump on every change until interrupted.
func cmdWatch(path string, opts benc.DecodeOptions) {
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "benc").Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w := inspect.NewWatcher(path, opts, log)
	if err := w.Start(ctx); err != nil {
		fatal("watch: %v", err)
	}
	defer w.Stop()

	log.Info().Str("file", path).Msg("watching")

	for {
		select {
		case res, ok := <-w.Results():
			if !ok {
				return
			}
			if res.Err != nil {
				log.Error().Err(res.Err).Msg("decode failed")
				continue
			}
			fmt.Println(benc.DumpString(res.Value))
		case <-ctx.Done():
			log.Info().Msg("stopping")
			return
		}
	}
}

func decodeFile(path string, opts benc.DecodeOptions) *benc.BValue {
	input, err := inspect.Load(path)
	if err != nil {
		fatal("%v", err)
	}
	v, err := benc.DecodeWithOptions(input, opts)
	if err != nil {
		fatal("%v", err)
	}
	return v
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "benc: "+format+"\n", args...)
	os.Exit(1)
}

// parseIntArg extracts an integer from a flag like "--max-depth=64"
func parseIntArg(arg, prefix string) (int, error) {
	val := strings.TrimPrefix(arg, prefix)
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	return n, nil
}
