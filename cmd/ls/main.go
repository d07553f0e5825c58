package main

import (
	"coreutils/internal/cli"
	"coreutils/internal/ls"
)

func main() {
	cli.Main("ls", ls.NewCommand)
}
