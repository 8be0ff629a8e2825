package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "folio").
		WithSynopsis("folio [opts] command [opts]").
		WithDescription("folio is a tool for working with folio document trees.").
		WithOpts(opts...).
		WithSubs(
			ViewCommand(cfg),
			LayoutCommand(cfg),
			DiffCommand(cfg),
			DecosCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view document trees with spans in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func LayoutCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LayoutConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("layout").
		WithAliases("l", "lay").
		WithSynopsis("layout [files]").
		WithDescription("lay out documents and print the command stream").
		WithRun(func(cc *cli.Context, args []string) error {
			return layoutRun(cfg, cc, args)
		})
	cfg.Layout = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <old> <new>").
		WithDescription("show what changed between two documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffRun(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func DecosCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecosConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("decos").
		WithSynopsis("decos").
		WithDescription("list decoration tags and their editor token types").
		WithRun(func(cc *cli.Context, args []string) error {
			return decosRun(cfg, cc, args)
		})
	cfg.Decos = cmd
	return cmd
}
