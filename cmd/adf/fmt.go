package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

// fmtRun rewrites files in canonical form: sections in data order, leaf
// lines grouped ahead of sub-sections, values quoted only where needed.
func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		if !cfg.Write {
			if err := doc.Serialize(cc.Out); err != nil {
				return err
			}
			continue
		}
		if arg == "-" {
			return fmt.Errorf("%w: -w needs file arguments", cli.ErrUsage)
		}
		buf := bytes.NewBuffer(nil)
		if err := doc.Serialize(buf); err != nil {
			return err
		}
		if err := os.WriteFile(arg, buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}
