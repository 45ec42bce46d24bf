package utils

import (
	"flag"
)

// InputFiles returns the CFG files passed as positional arguments.
// If no file is provided, it defaults to "cfg.yaml" in the working directory.
func InputFiles() []string {
	args := flag.Args()
	if len(args) == 0 {
		return []string{"cfg.yaml"}
	}

	return args
}
