package main

import (
	"github.com/adf-format/go-adf/constraint"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	checker := constraint.NewChecker()
	failed := false
	for _, arg := range args {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		for _, v := range checker.Check(doc) {
			failed = true
			if _, err := cc.Out.Write([]byte(arg + ": " + v.String() + "\n")); err != nil {
				return err
			}
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
