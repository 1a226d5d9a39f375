package token

// Unquote strips a matched leading/trailing quote run from s, reporting
// whether s was a complete quoted value. Used for scalar array elements,
// whose quoting marks them verbatim.
func Unquote(s string) (string, bool) {
	n := leadingQuotes(s)
	if n == 0 || !completeQuoted(s, n) {
		return s, false
	}
	return s[n : len(s)-n], true
}
