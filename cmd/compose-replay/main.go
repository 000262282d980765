// Command compose-replay replays a recorded input-method event script
// through the composition engine on a virtual clock and prints the
// resulting document.
//
//	compose-replay [-config file.toml] [-v] [-plain] script.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/compose"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("compose-replay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML config file")
	verbose := fs.Bool("v", false, "log engine transitions to stderr")
	plain := fs.Bool("plain", false, "render without colors")
	version := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *version {
		fmt.Fprintln(stdout, compose.Banner("compose-replay"))
		return 0
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: compose-replay [-config file.toml] [-v] [-plain] script.yaml")
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *plain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			fmt.Fprintf(stderr, "compose-replay: %v\n", err)
			return 1
		}
	}
	sc, err := loadScript(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "compose-replay: %v\n", err)
		return 1
	}
	r, err := newReplayer(cfg, sc, stdout, log)
	if err != nil {
		fmt.Fprintf(stderr, "compose-replay: %v\n", err)
		return 1
	}
	if err := r.replay(sc.Steps); err != nil {
		fmt.Fprintf(stderr, "compose-replay: %v\n", err)
		return 1
	}
	return 0
}
