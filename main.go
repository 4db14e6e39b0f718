package main

import (
	"os"

	"github.com/m-mizutani/dsfetch/pkg/cli"
)

func main() {
	os.Exit(run(os.Args))
}

// run returns the process exit code: 0 on success and 1 on any error
func run(args []string) int {
	if err := cli.New().Run(args); err != nil {
		return 1
	}
	return 0
}
