package main

import (
	"coreutils/internal/cli"
	"coreutils/internal/tail"
)

func main() {
	cli.Main("tail", tail.NewCommand)
}
