// ABOUTME: Command line interface for Web2One
// ABOUTME: Runs one-off conversions against a local store or serves the HTTP API

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
