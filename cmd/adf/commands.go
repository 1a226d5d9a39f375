package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: adf/a, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: adf/a, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "adf").
		WithSynopsis("adf [opts] command [opts]").
		WithDescription("adf is a tool for working with augmentable data files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return adfMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			MergeCommand(cfg),
			FmtCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			CheckCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view data files, with color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <dotpath> [files]").
		WithDescription("get values at a dot-path from files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithSynopsis("merge [files]").
		WithDescription("augment documents left to right and output the result").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithSynopsis("fmt [-w] [files]").
		WithDescription("rewrite data files in canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff two data documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithOpts(opts...).
		WithSynopsis("patch [-mergepatch] <jsonpatch> [files]").
		WithDescription("apply an RFC 6902 patch to data documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithAliases("c", "ch").
		WithSynopsis("check [files]").
		WithDescription("evaluate value annotations and report violations").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}
