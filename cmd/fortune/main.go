package main

import (
	"coreutils/internal/cli"
	"coreutils/internal/fortune"
)

func main() {
	cli.Main("fortune", fortune.NewCommand)
}
