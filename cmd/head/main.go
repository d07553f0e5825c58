package main

import (
	"coreutils/internal/cli"
	"coreutils/internal/head"
)

func main() {
	cli.Main("head", head.NewCommand)
}
