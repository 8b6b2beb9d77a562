package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavsurve/fidel/internal/compiler/ast"
	"github.com/arnavsurve/fidel/internal/compiler/parser"
)

func emit(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	em := New()
	out := em.Emit(prog)
	require.Empty(t, em.Errors())
	return out
}

func TestEmitLayout(t *testing.T) {
	src := `ይዘው x=[1,"a"];x+=1; ፋንክሽን f(a,b){ከሆነ(a<b){መመለስ a;}ካልሆነ{አትም b;}}
በማዘጋጀት(x<3){x=x+1;} ለ(ይዘው i=0;i<2;i-=1){xs[i]-=ጠይቅ("n");} f(1,2);`

	want := `ይዘው x = [1, "a"];
x += 1;

ፋንክሽን f(a, b) {
    ከሆነ (a < b) {
        መመለስ a;
    } ካልሆነ {
        አትም b;
    }
}

በማዘጋጀት (x < 3) {
    x = x + 1;
}
ለ (ይዘው i = 0; i < 2; i -= 1) {
    xs[i] -= ጠይቅ("n");
}
f(1, 2);
`
	assert.Equal(t, want, emit(t, src))
}

func TestEmitParenthesizesRightOperands(t *testing.T) {
	assert.Equal(t, "አትም 1 + (2 * 3);\n", emit(t, "አትም 1 + (2 * 3);"))
	assert.Equal(t, "አትም 1 + 2 * 3;\n", emit(t, "አትም (1 + 2) * 3;"))
	assert.Equal(t, "(x = 1) + 2;\n", emit(t, "(x = 1) + 2;"))
	assert.Equal(t, "a = b = 1;\n", emit(t, "a = b = 1;"))
}

func TestEmitRoundTrip(t *testing.T) {
	sources := []string{
		"ይዘው x = 1 + 2 * 3;",
		"x = y = [1, [2, 3], እውነት];",
		"a[1][2] -= 3; a[0] += a[1] - 2;",
		"አትም 1 - (2 - (3 - 4));",
		"f(g(1), (x = 2) + 3, ጠይቅ(\"?\"));",
		"ከሆነ (x == ሐሰት) { } ካልሆነ { ከሆነ (y) { አትም 1; } }",
		"ለ (i = 0; i < 3; i += 1) { በማዘጋጀት (j) { j -= 1; } }",
		"ፋንክሽን f() { } ፋንክሽን g(a) { መመለስ f(); } g(1);",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			prog, err := parser.Parse(src)
			require.NoError(t, err)

			out := New().Emit(prog)
			again, err := parser.Parse(out)
			require.NoError(t, err, "formatted source does not parse:\n%s", out)

			assert.Equal(t, ast.Program(prog), ast.Program(again))
			assert.Equal(t, out, New().Emit(again), "formatting is not idempotent")
		})
	}
}

func TestEmitRejectsNestedBlock(t *testing.T) {
	em := New()
	em.Emit(&ast.Block{Statements: []ast.Node{&ast.Block{}}})
	assert.Len(t, em.Errors(), 1)
}
