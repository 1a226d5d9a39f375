package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	acc, err := cfg.readDoc(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		acc.MergeDocument(doc)
	}
	return cfg.writeDoc(cc.Out, acc)
}
