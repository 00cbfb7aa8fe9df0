package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/emsdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base URL of the backend API
//	-i int      notification poll interval (seconds)
//	-d string   path of the local session database
//
// Only these flags are looked at; -c and -e belong to the other loaders.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	interval := fs.Int("i", int(cfg.NotificationInterval.Seconds()), "notification poll interval (in seconds)")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.NotificationInterval = time.Duration(*interval) * time.Second
}
