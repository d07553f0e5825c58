package main

import (
	"coreutils/internal/cli"
	"coreutils/internal/cut"
)

func main() {
	cli.Main("cut", cut.NewCommand)
}
