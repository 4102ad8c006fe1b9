package config

import (
	"flag"
	"os"

	"github.com/dsavelev/filevault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the SQLite snapshot store (default from Config)
//	-k int      length of generated encryption keys (default from Config)
//
// os.Args is filtered through flagx.FilterArgs so flags owned by other
// components do not interfere with parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the vault database")
	fs.IntVar(&cfg.KeyLength, "k", cfg.KeyLength, "length of generated encryption keys")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
