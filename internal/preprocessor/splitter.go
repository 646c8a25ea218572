package preprocessor

import (
	"strings"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// SplitStatements splits text on ';' and returns the trimmed, non-empty
// pieces in source order, numbered from 1.
func SplitStatements(text string) []dwgate.Statement {
	var statements []dwgate.Statement
	for _, piece := range strings.Split(text, ";") {
		sql := strings.TrimSpace(piece)
		if sql == "" {
			continue
		}
		statements = append(statements, dwgate.Statement{
			Index: len(statements) + 1,
			SQL:   sql,
		})
	}
	return statements
}
