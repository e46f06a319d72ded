// Package main is the entry point for the satsearch CLI.
package main

import (
	"github.com/donaldgifford/satsearch-go/cmd/satsearch/cmd"
)

func main() {
	cmd.Execute()
}
