// Package breakpoints parses responsive rules that map a measured length,
// usually a container width, to a number such as a column count or a gap.
//
// A rule set is a list of "guard => result" rules separated by newlines or
// semicolons. Rules are tried in order and the first matching guard wins:
//
//	# columns
//	>= 1200 => 4
//	>= 900  => 3
//	default => per 300
//
// Guards compare the input with >=, >, <= or <; "default" always matches.
// Results are a plain number (an optional "px" suffix is accepted), a
// percentage of the input ("2%"), or "per N", which yields how many whole
// N-sized spans fit in the input (at least one).
package breakpoints

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	rulesLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?(?:px|%)?`},
		{Name: "Arrow", Pattern: `=>`},
		{Name: "Op", Pattern: `>=|<=|>|<`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `;`},
	})

	rulesParser = participle.MustBuild[ruleFile](
		participle.Lexer(rulesLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// ruleFile is the root AST node.
type ruleFile struct {
	Rules []*ruleNode `parser:"( @@ | Newline | ';' )*"`
}

// ruleNode is one "guard => result" line.
type ruleNode struct {
	Pos    lexer.Position
	Guard  *guardNode  `parser:"@@"`
	Result *resultNode `parser:"'=>' @@"`
}

type guardNode struct {
	Default bool         `parser:"  @'default'"`
	Compare *compareNode `parser:"| @@"`
}

type compareNode struct {
	Op    string `parser:"@Op"`
	Bound string `parser:"@Number"`
}

type resultNode struct {
	Per   *string `parser:"  'per' @Number"`
	Value *string `parser:"| @Number"`
}

func parseRuleFile(src string) (*ruleFile, error) {
	return rulesParser.ParseString("", src)
}
