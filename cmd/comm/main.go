package main

import (
	"coreutils/internal/cli"
	"coreutils/internal/comm"
)

func main() {
	cli.Main("comm", comm.NewCommand)
}
