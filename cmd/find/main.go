package main

import (
	"coreutils/internal/cli"
	"coreutils/internal/find"
)

func main() {
	cli.Main("find", find.NewCommand)
}
