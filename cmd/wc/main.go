package main

import (
	"coreutils/internal/cli"
	"coreutils/internal/wc"
)

func main() {
	cli.Main("wc", wc.NewCommand)
}
