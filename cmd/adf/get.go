package main

import (
	"fmt"

	adf "github.com/adf-format/go-adf"
	"github.com/adf-format/go-adf/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dot-path", cli.ErrUsage)
	}
	path, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		res := doc.Get(path)
		if res == nil {
			// nothing there, nothing to print
			continue
		}
		// re-rooting the result keeps the output a well formed document
		out := adf.NewDocument()
		out.Set(path, res.Clone())
		if err := cfg.writeDoc(cc.Out, out); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
