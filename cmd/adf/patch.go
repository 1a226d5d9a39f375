package main

import (
	"fmt"
	"io"
	"os"

	adf "github.com/adf-format/go-adf"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/scott-cotton/cli"
)

// patch applies an RFC 6902 patch, or with -mergepatch an RFC 7386
// merge patch, to each target document. The patch crosses through JSON,
// so lexical number forms may normalize; fragments ride along
// untouched.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patchArg := args[0]
	patchData, err := readArg(patchArg)
	if err != nil {
		return err
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	var decoded jsonpatch.Patch
	if !cfg.MergePatch {
		decoded, err = jsonpatch.DecodePatch(patchData)
		if err != nil {
			return fmt.Errorf("error decoding patch %s: %w", patchArg, err)
		}
	}
	for _, arg := range args {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		rootJSON, err := doc.MarshalJSON()
		if err != nil {
			return err
		}
		var patched []byte
		if cfg.MergePatch {
			patched, err = jsonpatch.MergePatch(rootJSON, patchData)
		} else {
			patched, err = decoded.Apply(rootJSON)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		res, err := adf.FromJSON(patched)
		if err != nil {
			return err
		}
		for _, f := range doc.Fragments() {
			res.AddFragment(f.Path, f.Value)
		}
		if err := cfg.writeDoc(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return d, nil
}
