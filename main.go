// Package main is the entry point for the lolmetrics CLI tool, which loads
// League of Legends match exports and computes per-champion metrics.
package main

import "github.com/pable/go-lol-metrics/cmd"

func main() {
	cmd.Execute()
}
