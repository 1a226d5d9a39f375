package main

import (
	"fmt"

	adf "github.com/adf-format/go-adf"
	"github.com/adf-format/go-adf/ir"
	"github.com/adf-format/go-adf/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	from, err := cfg.readDoc(args[0])
	if err != nil {
		return err
	}
	to, err := cfg.readDoc(args[1])
	if err != nil {
		return err
	}
	var d libdiff.Diff
	if cfg.Key != "" {
		d, err = keyedDiff(cfg, from, to)
		if err != nil {
			return err
		}
	} else {
		d = adf.Diff(from, to)
	}
	if d.Empty() {
		return nil
	}
	if _, err := cc.Out.Write([]byte(d.String())); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// keyedDiff compares the arrays at -at by the -key field instead of by
// position.
func keyedDiff(cfg *DiffConfig, from, to *adf.Document) (libdiff.Diff, error) {
	path, err := ir.ParsePath(cfg.At)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	fromArr, toArr := from.Get(path), to.Get(path)
	if fromArr == nil || toArr == nil {
		return nil, fmt.Errorf("%w: no array at %q in both inputs", cli.ErrUsage, cfg.At)
	}
	return libdiff.DiffArrayByKey(fromArr, toArr, cfg.Key)
}
