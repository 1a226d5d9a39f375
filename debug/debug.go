// Package debug holds env-var-driven debug switches for the adf tools.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Parse    bool
	Merge    bool
	Encode   bool
	Check    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("ADF_DEBUG_TOKENIZE")
	d.Parse = boolEnv("ADF_DEBUG_PARSE")
	d.Merge = boolEnv("ADF_DEBUG_MERGE")
	d.Encode = boolEnv("ADF_DEBUG_ENCODE")
	d.Check = boolEnv("ADF_DEBUG_CHECK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
func Encode() bool {
	return d.Encode
}
func Check() bool {
	return d.Check
}
