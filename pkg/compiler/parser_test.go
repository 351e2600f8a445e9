package compiler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func parseSource(t *testing.T, src string) []*Decl {
	t.Helper()
	tokens, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	decls, err := Parse(tokens, src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return decls
}

// ignoreAnnotations drops the fields later phases attach, so structural
// comparisons see only what the parser built.
var ignoreAnnotations = cmp.Options{
	cmpopts.IgnoreFields(Expr{}, "Symbol", "Type", "Reg"),
	cmpopts.IgnoreFields(Decl{}, "Symbol", "LocalVarCount"),
	cmpopts.IgnoreFields(Param{}, "Symbol"),
	cmpopts.IgnoreFields(Stmt{}, "FunctionName"),
}

func TestParseDeclarations(t *testing.T) {
	t.Run("GlobalScalar", func(t *testing.T) {
		decls := parseSource(t, "x: integer = 42;")
		if len(decls) != 1 {
			t.Fatalf("expected 1 decl, got %d", len(decls))
		}
		d := decls[0]
		if d.Name != "x" || d.Type.Kind != TypeInteger {
			t.Errorf("wrong decl: %s", d)
		}
		if d.Value == nil || d.Value.Kind != ExprIntegerLiteral || d.Value.IntegerValue != 42 {
			t.Errorf("wrong initializer: %s", d.Value)
		}
	})

	t.Run("Uninitialized", func(t *testing.T) {
		d := parseSource(t, "b: boolean;")[0]
		if d.Type.Kind != TypeBoolean || d.Value != nil {
			t.Errorf("wrong decl: %s", d)
		}
	})

	t.Run("ArrayWithInitializer", func(t *testing.T) {
		d := parseSource(t, "a: array [5] integer = {1, 2, 3};")[0]
		if d.Type.Kind != TypeArray || d.Type.Subtype.Kind != TypeInteger {
			t.Fatalf("wrong type: %s", d.Type)
		}
		if d.Type.SizeExpr == nil || d.Type.SizeExpr.IntegerValue != 5 {
			t.Errorf("wrong size expr: %s", d.Type.SizeExpr)
		}
		if d.Value.Kind != ExprInitList || len(d.Value.Args) != 3 {
			t.Errorf("wrong init list: %s", d.Value)
		}
	})

	t.Run("UnsizedArray", func(t *testing.T) {
		d := parseSource(t, "a: array [] integer = {1};")[0]
		if d.Type.SizeExpr != nil {
			t.Errorf("expected no size expr, got %s", d.Type.SizeExpr)
		}
	})

	t.Run("Function", func(t *testing.T) {
		d := parseSource(t, `
square: function integer (x: integer) = {
    return x * x;
}
`)[0]
		if d.Type.Kind != TypeFunction || d.Type.Subtype.Kind != TypeInteger {
			t.Fatalf("wrong type: %s", d.Type)
		}
		if len(d.Type.Params) != 1 || d.Type.Params[0].Name != "x" {
			t.Fatalf("wrong params: %s", d.Type)
		}
		if d.Code == nil || d.Code.Kind != StmtBlock || len(d.Code.Stmts) != 1 {
			t.Fatalf("wrong body")
		}
		if d.Code.Stmts[0].Kind != StmtReturn {
			t.Errorf("expected a return statement")
		}
	})

	t.Run("FunctionPrototype", func(t *testing.T) {
		d := parseSource(t, "f: function void (a: integer, b: string);")[0]
		if d.Code != nil || len(d.Type.Params) != 2 {
			t.Errorf("wrong prototype: %s", d)
		}
	})
}

func TestParseExpressions(t *testing.T) {
	parseExpr := func(t *testing.T, src string) *Expr {
		t.Helper()
		d := parseSource(t, "f: function void () = { "+src+"; }")[0]
		return d.Code.Stmts[0].Expr
	}

	t.Run("Precedence", func(t *testing.T) {
		e := parseExpr(t, "x = 1 + 2 * 3")
		if e.Kind != ExprAssign {
			t.Fatalf("expected assignment at the root, got %s", e)
		}
		sum := e.Right
		if sum.Kind != ExprAdd || sum.Right.Kind != ExprMul {
			t.Errorf("expected 1 + (2 * 3), got %s", sum)
		}
	})

	t.Run("Parentheses", func(t *testing.T) {
		e := parseExpr(t, "x = (1 + 2) * 3")
		if e.Right.Kind != ExprMul || e.Right.Left.Kind != ExprAdd {
			t.Errorf("expected (1 + 2) * 3, got %s", e.Right)
		}
	})

	t.Run("ExponentRightAssociative", func(t *testing.T) {
		e := parseExpr(t, "x = 2 ^ 3 ^ 4")
		if e.Right.Kind != ExprExponent || e.Right.Right.Kind != ExprExponent {
			t.Errorf("expected 2 ^ (3 ^ 4), got %s", e.Right)
		}
	})

	t.Run("UnaryBindsTighter", func(t *testing.T) {
		e := parseExpr(t, "b = !p && q")
		if e.Right.Kind != ExprLogicalAnd || e.Right.Left.Kind != ExprLogicalNot {
			t.Errorf("expected (!p) && q, got %s", e.Right)
		}
	})

	t.Run("Call", func(t *testing.T) {
		e := parseExpr(t, "f(1, x, g())")
		if e.Kind != ExprCall || e.Left.Name != "f" || len(e.Args) != 3 {
			t.Fatalf("wrong call: %s", e)
		}
		if e.Args[2].Kind != ExprCall || len(e.Args[2].Args) != 0 {
			t.Errorf("wrong nested call: %s", e.Args[2])
		}
	})

	t.Run("Subscript", func(t *testing.T) {
		e := parseExpr(t, "a[i + 1]")
		if e.Kind != ExprSubscript || e.Left.Name != "a" || e.Right.Kind != ExprAdd {
			t.Errorf("wrong subscript: %s", e)
		}
	})

	t.Run("Increment", func(t *testing.T) {
		e := parseExpr(t, "n++")
		if e.Kind != ExprIncrement || e.Left.Kind != ExprName || e.Left.Name != "n" {
			t.Errorf("wrong increment: %s", e)
		}
	})

	t.Run("AssignRightAssociative", func(t *testing.T) {
		e := parseExpr(t, "x = y = 1")
		if e.Kind != ExprAssign || e.Right.Kind != ExprAssign {
			t.Errorf("expected x = (y = 1), got %s", e)
		}
	})
}

func TestParseStatements(t *testing.T) {
	body := func(t *testing.T, src string) []*Stmt {
		t.Helper()
		d := parseSource(t, "f: function void () = {\n"+src+"\n}")[0]
		return d.Code.Stmts
	}

	t.Run("IfElse", func(t *testing.T) {
		stmts := body(t, "if (x > 0) { print x; } else { print 0; }")
		s := stmts[0]
		if s.Kind != StmtIfElse || s.Body.Kind != StmtBlock || s.ElseBody.Kind != StmtBlock {
			t.Errorf("wrong if/else shape")
		}
	})

	t.Run("IfWithoutBraces", func(t *testing.T) {
		s := body(t, "if (x > 0) print x;")[0]
		if s.Kind != StmtIfElse || s.Body.Kind != StmtPrint || s.ElseBody != nil {
			t.Errorf("wrong if shape")
		}
	})

	t.Run("ForFull", func(t *testing.T) {
		s := body(t, "for (i = 0; i < 10; i++) { print i; }")[0]
		if s.Kind != StmtFor || s.InitExpr == nil || s.Expr == nil || s.NextExpr == nil {
			t.Errorf("wrong for header")
		}
	})

	t.Run("ForEmptyHeader", func(t *testing.T) {
		s := body(t, "for (;;) { }")[0]
		if s.InitExpr != nil || s.Expr != nil || s.NextExpr != nil {
			t.Errorf("expected an empty header")
		}
	})

	t.Run("PrintMultiple", func(t *testing.T) {
		s := body(t, `print "x is ", x, "\n";`)[0]
		if s.Kind != StmtPrint || len(s.Exprs) != 3 {
			t.Errorf("wrong print args: %d", len(s.Exprs))
		}
	})

	t.Run("ReturnBare", func(t *testing.T) {
		s := body(t, "return;")[0]
		if s.Kind != StmtReturn || s.Expr != nil {
			t.Errorf("wrong bare return")
		}
	})

	t.Run("LocalDeclaration", func(t *testing.T) {
		s := body(t, "n: integer = 3;")[0]
		if s.Kind != StmtDecl || s.Decl.Name != "n" {
			t.Errorf("wrong local decl")
		}
	})
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"MissingSemicolon": "x: integer = 1",
		"MissingType":      "x := 1;",
		"BadType":          "x: flavor;",
		"DanglingComma":    "f: function void () = { print 1, ; }",
		"UnterminatedBody": "f: function void () = { print 1;",
		"StrayToken":       "f: function void () = { ) }",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			tokens, err := Lex(src)
			if err != nil {
				return // a lex error also counts
			}
			if _, err := Parse(tokens, src); err == nil {
				t.Errorf("expected a parse error for %q", src)
			}
		})
	}
}

// TestPrintReparse checks the round trip: pretty-printing a parsed
// program and re-parsing the output yields the same tree. Holds for any
// program that does not use parentheses to override precedence, since
// the printer emits none.
func TestPrintReparse(t *testing.T) {
	sources := map[string]string{
		"Globals": `
x: integer = 42;
b: boolean = true;
c: char = 'q';
s: string = "hi";
a: array [3] integer = {1, 2, 3};
`,
		"Function": `
fib: function integer (n: integer) = {
    if (n < 2) {
        return n;
    }
    return fib(n - 1) + fib(n - 2);
}
`,
		"Statements": `
main: function integer () = {
    total: integer = 0;
    i: integer;
    for (i = 0; i < 10; i++) {
        total = total + i * 2;
    }
    if (total > 50 && !false) {
        print "big: ", total, "\n";
    } else {
        print "small\n";
    }
    return total % 7;
}
`,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			first := parseSource(t, src)
			printed := FormatProgram(first)
			second := parseSource(t, printed)

			if diff := cmp.Diff(first, second, ignoreAnnotations); diff != "" {
				t.Errorf("round trip changed the tree (-first +reparsed):\n%s\nprinted form:\n%s", diff, printed)
			}
		})
	}
}
