package main

import "github.com/cbout22/refmirror/internal/cli"

func main() {
	cli.Execute()
}
