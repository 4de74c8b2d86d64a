package main

import (
	"fmt"
	"os"

	"github.com/handiism/musica-packotron/internal/config"
	"github.com/handiism/musica-packotron/internal/tui"
)

func main() {
	settings := config.DefaultSettings()
	if path, err := config.DefaultPath(); err == nil {
		if loaded, err := config.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		} else {
			settings = loaded
		}
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
