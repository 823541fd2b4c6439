package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/webstash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local database file (default from Config)
//	-i int      tip rotation interval in seconds (default from Config)
//
// os.Args is filtered down to the flags handled here (flagx.FilterArgs) so
// parsing does not interfere with flags owned by other packages.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	tipRotationInterval := fs.Int("i", int(cfg.TipRotationInterval.Seconds()), "tip rotation interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TipRotationInterval = time.Duration(*tipRotationInterval) * time.Second
}
