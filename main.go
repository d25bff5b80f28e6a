// Package main is the entry point for the atph2h CLI tool, which ingests
// ATP season match files and answers head-to-head queries between players.
package main

import "github.com/lmendes/go-atp-h2h/cmd"

func main() {
	cmd.Execute()
}
