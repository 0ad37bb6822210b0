// Package main is the entry point for catalogd.
package main

import (
	"os"

	"github.com/donaldgifford/catalog-browser/cmd/catalogd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
