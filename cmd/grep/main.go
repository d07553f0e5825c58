package main

import (
	"coreutils/internal/cli"
	"coreutils/internal/grep"
)

func main() {
	cli.Main("grep", grep.NewCommand)
}
