package main

import (
	"coreutils/internal/cal"
	"coreutils/internal/cli"
)

func main() {
	cli.Main("cal", cal.NewCommand)
}
