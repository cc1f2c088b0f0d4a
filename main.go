// Package main is the entry point for the cascade CLI.
package main

import "github.com/ajxudir/cascade/cmd"

func main() {
	cmd.Execute()
}
