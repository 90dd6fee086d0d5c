package config

import (
	"flag"
	"os"
	"time"

	"github.com/campushq/placetrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the placement backend (default from Config)
//	-s string   path to the local session database
//	-i string   search debounce interval, e.g. "300ms"
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the placement backend")
	fs.StringVar(&cfg.SessionDBPath, "s", cfg.SessionDBPath, "path to the local session database")
	debounce := fs.String("i", cfg.SearchDebounce.String(), "search debounce interval (e.g. 300ms)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if d, err := time.ParseDuration(*debounce); err == nil {
		cfg.SearchDebounce = d
	}
}
