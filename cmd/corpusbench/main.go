package main

import (
	"fmt"
	"os"
)

func main() {
	cmd, a := newRootCmd(os.Stdout)
	err := cmd.Execute()
	if closeErr := a.finish(err); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Error closing logger: %v\n", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
