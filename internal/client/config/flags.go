package config

import (
	"flag"
	"os"

	"github.com/codamon/immersive-prompt/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local document database (default from Config)
//	-n int      default number of history entries to show
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local document database")
	fs.IntVar(&cfg.HistoryLimit, "n", cfg.HistoryLimit, "default number of history entries to show")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
