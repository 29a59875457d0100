package main

import (
	"os"

	"circuitboard/cmd"
	"circuitboard/internal/display"
)

func main() {
	cmd.SetHost(display.Run)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
