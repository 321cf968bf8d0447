// Package main is the entry point for the treesummary CLI.
package main

import "treesummary.dev/pkg/treesummary/cmd"

func main() {
	cmd.Execute()
}
