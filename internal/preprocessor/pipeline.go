package preprocessor

import (
	"fmt"
	"strings"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// Pipeline converts SQL artifacts into executable statements.
type Pipeline struct {
	commentStripper CommentStripper
	strict          bool
}

// NewPipeline creates a new preprocessing pipeline. When strict is true,
// artifacts with unresolved placeholders are rejected.
func NewPipeline(strict bool) *Pipeline {
	return &Pipeline{
		commentStripper: NewCommentStripper(),
		strict:          strict,
	}
}

// Process substitutes placeholders in the artifact content and splits the
// result into statements.
func (p *Pipeline) Process(artifact dwgate.SQLArtifact, placeholders map[string]string) ([]dwgate.Statement, error) {
	substituted := Substitute(artifact.Content, placeholders)

	if p.strict {
		if err := p.checkResolved(artifact.RelativePath, substituted); err != nil {
			return nil, err
		}
	}

	return SplitStatements(substituted), nil
}

func (p *Pipeline) checkResolved(path, text string) error {
	unresolved := FindUnresolved(p.commentStripper.Strip(text))
	if len(unresolved) == 0 {
		return nil
	}

	parts := make([]string, len(unresolved))
	for i, u := range unresolved {
		parts[i] = fmt.Sprintf("%s (line %d)", u.Token, u.Line)
	}
	return fmt.Errorf("%s: unresolved placeholder(s) %s: %w",
		path, strings.Join(parts, ", "), dwgate.ErrInvalidConfig)
}
