package token

import "fmt"

// Pos identifies a source line. ADF tokens are whole lines, so a line
// number is the whole position.
type Pos struct {
	Line int // 1-based
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d", p.Line)
}
