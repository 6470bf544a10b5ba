package cli

import (
	"flag"
)

type Options struct {
	NumWorkers int
	PrintHelp  bool
}

var opts = Options{}

var EnvMessage = `This requires the following environment vars:

ECOSHARD_CONFIG_DIR - Path to the directory containing the .env settings file.

ECOSHARD_ENV - Name of the configuration to load. For example:
    test - Loads .env.test from ECOSHARD_CONFIG_DIR
    prod - Loads .env.prod from ECOSHARD_CONFIG_DIR
`

func Init() {
	flag.IntVar(&opts.NumWorkers, "workers", 0, "Number of assets to acquire in parallel. Zero means use the WORKERS config setting.")
	flag.BoolVar(&opts.PrintHelp, "help", false, "Print help message")
}

func ParseOpts() Options {
	flag.Parse()
	return opts
}

func PrintDefaults() {
	flag.PrintDefaults()
}
