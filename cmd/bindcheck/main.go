package main

import (
	"os"

	"github.com/go-drift/bind/cmd/bindcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
