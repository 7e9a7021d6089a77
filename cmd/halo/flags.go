// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --env, --style, --scale, --list-styles, --verbose, --version

package main

import (
	"flag"
	"os"
	"path/filepath"
)

type cliArgs struct {
	configPath string
	envFile    string
	styleName  string
	scale      float64
	listStyles bool
	verbose    bool
	version    bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.configPath, "config", defaultConfigPath(), "Path to the settings YAML file")
	flag.StringVar(&args.envFile, "env", ".env", "Path to a dotenv override file")
	flag.StringVar(&args.styleName, "style", "", "Select a style by name at startup")
	flag.Float64Var(&args.scale, "scale", 0, "Override the display scale factor")
	flag.BoolVar(&args.listStyles, "list-styles", false, "Print available styles and exit")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "halo.yaml"
	}
	return filepath.Join(dir, "halo", "halo.yaml")
}
