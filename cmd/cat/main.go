package main

import (
	"coreutils/internal/cat"
	"coreutils/internal/cli"
)

func main() {
	cli.Main("cat", cat.NewCommand)
}
