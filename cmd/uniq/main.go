package main

import (
	"coreutils/internal/cli"
	"coreutils/internal/uniq"
)

func main() {
	cli.Main("uniq", uniq.NewCommand)
}
