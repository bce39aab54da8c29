// Package main is the entry point for retail-dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
