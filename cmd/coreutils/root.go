package main

import (
	"github.com/spf13/cobra"

	"coreutils/internal/cal"
	"coreutils/internal/cat"
	"coreutils/internal/cli"
	"coreutils/internal/comm"
	"coreutils/internal/cut"
	"coreutils/internal/find"
	"coreutils/internal/fortune"
	"coreutils/internal/grep"
	"coreutils/internal/head"
	"coreutils/internal/ls"
	"coreutils/internal/tail"
	"coreutils/internal/uniq"
	"coreutils/internal/wc"
)

type tool struct {
	name       string
	newCommand func(*cli.App) *cobra.Command
}

var tools = []tool{
	{"cal", cal.NewCommand},
	{"cat", cat.NewCommand},
	{"comm", comm.NewCommand},
	{"cut", cut.NewCommand},
	{"find", find.NewCommand},
	{"fortune", fortune.NewCommand},
	{"grep", grep.NewCommand},
	{"head", head.NewCommand},
	{"ls", ls.NewCommand},
	{"tail", tail.NewCommand},
	{"uniq", uniq.NewCommand},
	{"wc", wc.NewCommand},
}

func lookup(name string) (tool, bool) {
	for _, t := range tools {
		if t.name == name {
			return t, true
		}
	}
	return tool{}, false
}

// newRootCommand собирает корневую команду со всеми утилитами, config и man
func newRootCommand(app *cli.App) *cobra.Command {
	root := &cobra.Command{
		Use:   cli.AppName,
		Short: "Classic Unix text tools in one binary",
	}
	app.Setup(root)

	root.AddGroup(
		&cobra.Group{ID: "tools", Title: "Tools:"},
		&cobra.Group{ID: "meta", Title: "Settings and help:"},
	)
	for _, t := range tools {
		cmd := t.newCommand(app)
		cmd.GroupID = "tools"
		root.AddCommand(cmd)
	}

	config := newConfigCommand(app)
	config.GroupID = "meta"
	man := newManCommand(app)
	man.GroupID = "meta"
	root.AddCommand(config, man)
	return root
}
