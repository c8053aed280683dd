package main

import (
	"os"

	"github.com/RayyanDarugar/Pulse/cmd/pulse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
