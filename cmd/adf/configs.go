package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	adf "github.com/adf-format/go-adf"
	"github.com/adf-format/go-adf/encode"
	"github.com/adf-format/go-adf/format"
	"github.com/adf-format/go-adf/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Strict bool `cli:"name=strict desc='fail on recoverable input problems'"`
	Raw    bool `cli:"name=raw desc='read scalars as strings, no type inference'"`
	Color  bool `cli:"name=color desc='encode with color'"`
	Quiet  bool `cli:"name=q aliases=quiet desc='suppress diagnostics on stderr'"`

	A bool `cli:"name=a aliases=adf desc='do i/o in adf'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) inFormat(arg string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.A:
		return format.ADFFormat
	}
	// fall back on the file suffix
	switch {
	case strings.HasSuffix(arg, format.JSONFormat.Suffix()):
		return format.JSONFormat
	case strings.HasSuffix(arg, format.YAMLFormat.Suffix()), strings.HasSuffix(arg, ".yml"):
		return format.YAMLFormat
	}
	return format.ADFFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.ADFFormat
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	var res []parse.Option
	if cfg.Strict {
		res = append(res, parse.Strict())
	}
	if cfg.Raw {
		res = append(res, parse.InferTypes(false))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) && cfg.outFormat().IsADF() {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// readDoc loads one document from a file argument or "-" for stdin,
// decoding per the input format.
func (cfg *MainConfig) readDoc(arg string) (*adf.Document, error) {
	var rd io.Reader
	if arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rd = f
	}
	d, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	var doc *adf.Document
	switch f := cfg.inFormat(arg); {
	case f.IsJSON():
		doc, err = adf.FromJSON(d)
	case f.IsYAML():
		doc, err = adf.FromYAML(d)
	default:
		doc, err = parse.Parse(d, cfg.parseOpts()...)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if !cfg.Quiet {
		for _, diag := range doc.Diagnostics() {
			theLog.Warn(diag.Err.Error(), "file", arg, "at", diag.Pos.String())
		}
	}
	return doc, nil
}

// writeDoc writes doc in the output format. JSON and YAML carry the
// root only; fragments have no home there.
func (cfg *MainConfig) writeDoc(w io.Writer, doc *adf.Document) error {
	f := cfg.outFormat()
	if !f.IsADF() && len(doc.Fragments()) > 0 && !cfg.Quiet {
		theLog.Warn("dropping fragments", "format", f.String(), "count", len(doc.Fragments()))
	}
	return doc.Serialize(w, cfg.encOpts(w)...)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='rewrite files in place'"`

	Fmt *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Key string `cli:"name=key desc='diff arrays at -at by this element field'"`
	At  string `cli:"name=at desc='dot-path of the arrays for -key'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	MergePatch bool `cli:"name=mergepatch aliases=mp desc='treat the patch as an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
