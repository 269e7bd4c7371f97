// Package main is the entry point for the sabot CLI.
package main

import "github.com/sabot-dev/sabot/cmd"

func main() {
	cmd.Execute()
}
