// Package main is the entry point for the catalog CLI client.
package main

import (
	"github.com/donaldgifford/catalog-browser/cmd/catalog/cmd"
)

func main() {
	cmd.Execute()
}
