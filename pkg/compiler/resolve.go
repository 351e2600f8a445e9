package compiler

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
)

// Resolver walks the IR and attaches a Symbol to every declaration and
// name use. Errors accumulate so one pass surfaces all of them; the
// caller decides whether to continue the pipeline.
type Resolver struct {
	scopes          *ScopeStack
	currentFunction string
	errs            []error
}

// ResolveProgram resolves every name in the declaration list. A nil
// return means every Decl, Param and name Expr now carries a Symbol,
// except names inside array size expressions, which are not visited.
func ResolveProgram(decls []*Decl) error {
	r := &Resolver{scopes: NewScopeStack()}
	for _, d := range decls {
		r.declResolve(d)
	}
	return errors.Join(r.errs...)
}

func (r *Resolver) errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Errorf(format, args...))
}

func (r *Resolver) declResolve(d *Decl) {
	if d == nil {
		return
	}

	kind := SymbolGlobal
	if r.scopes.Level() > 1 {
		kind = SymbolLocal
	}

	if r.scopes.LookupCurrent(d.Name) != nil {
		r.errorf("identifier '%s' was redeclared", d.Name)
	}
	d.Symbol = NewSymbol(kind, d.Type, d.Name)

	// resolve the initializer before binding, so it cannot refer to the
	// name being declared
	r.exprResolve(d.Value)
	r.scopes.Bind(d.Name, d.Symbol)
	glog.V(2).Infof("bound %s at level %d (slot %d)", d.Name, r.scopes.Level(), d.Symbol.Which)

	if d.Code != nil {
		r.currentFunction = d.Name

		// the function scope replaces the body block's own
		r.scopes.Enter()
		r.paramsResolve(d.Type.Params)
		for _, s := range d.Code.Stmts {
			r.stmtResolve(s)
		}
		d.LocalVarCount = r.scopes.LocalCount()
		r.scopes.Exit()

		r.currentFunction = ""
	}
}

func (r *Resolver) stmtResolve(s *Stmt) {
	if s == nil {
		return
	}

	if s.Kind == StmtBlock {
		r.scopes.Enter()
		for _, child := range s.Stmts {
			r.stmtResolve(child)
		}
		r.scopes.Exit()
		return
	}

	if s.Kind == StmtReturn {
		if r.currentFunction == "" {
			r.errorf("return statement outside of function")
		}
		s.FunctionName = r.currentFunction
	}

	r.declResolve(s.Decl)
	r.exprResolve(s.InitExpr)
	r.exprResolve(s.Expr)
	r.exprResolve(s.NextExpr)
	for _, e := range s.Exprs {
		r.exprResolve(e)
	}
	r.stmtResolve(s.Body)
	r.stmtResolve(s.ElseBody)
}

func (r *Resolver) exprResolve(e *Expr) {
	if e == nil {
		return
	}

	if e.Kind == ExprName {
		e.Symbol = r.scopes.Lookup(e.Name)
		if e.Symbol == nil {
			r.errorf("identifier '%s' used before it was declared", e.Name)
		}
		return
	}

	r.exprResolve(e.Left)
	r.exprResolve(e.Right)
	for _, a := range e.Args {
		r.exprResolve(a)
	}
}

func (r *Resolver) paramsResolve(params []*Param) {
	for i, p := range params {
		p.Symbol = NewSymbol(SymbolParam, p.Type, p.Name)
		p.Symbol.Which = i
		if i < numArgumentRegisters {
			r.scopes.CountParam()
		}
		r.scopes.Bind(p.Name, p.Symbol)
	}
}
