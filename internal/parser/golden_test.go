package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"lumen/internal/ast"
)

var goldenSources = []struct {
	name   string
	file   string
	source string
}{
	{
		name:   "add",
		file:   "add.lm",
		source: "fn add(a: int, b: int) -> int { return a + b; }",
	},
	{
		name:   "decl",
		file:   "decl.lm",
		source: "const x: int = 5; // five\nvar p: *[4]u8;",
	},
	{
		name: "control",
		file: "control.lm",
		source: `pub fn main() -> int {
    var i = 0;
    for i < 10 {
        if !done {
            i = i + 1;
        }
        log(i, 'x');
    }
    return 0;
}
`,
	},
}

func TestGoldenTrees(t *testing.T) {
	g := goldie.New(t)

	for _, tc := range goldenSources {
		program, err := ParseSource(tc.file, tc.source)
		require.NoError(t, err, tc.name)

		g.Assert(t, "tree_"+tc.name, []byte(ast.Sprint(program)))
	}
}

func TestGoldenTokens(t *testing.T) {
	g := goldie.New(t)

	tokens, err := Tokenize(goldenSources[1].source)
	require.NoError(t, err)

	var builder strings.Builder
	for _, tok := range tokens {
		builder.WriteString(fmt.Sprintf("%s %s\n", tok.Location, tok))
	}

	g.Assert(t, "tokens_decl", []byte(builder.String()))
}
