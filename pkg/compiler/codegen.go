package compiler

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/samber/lo"

	"bminor/pkg/asm"
)

// CodeGen walks the annotated IR and emits AT&T-syntax x86-64 assembly.
//
// Temporaries live in a seven-register scratch pool. Every exprCodegen
// leaves its result in exactly one occupied scratch register (recorded
// in e.Reg) and the consumer must free it; a leak exhausts the pool and
// aborts the compile.
type CodeGen struct {
	w         *asm.Writer
	scratch   [len(asm.ScratchRegisters)]bool
	nextLabel int
}

func newCodeGen() *CodeGen {
	return &CodeGen{w: &asm.Writer{}}
}

// Generate emits the assembly for a resolved and typechecked program.
func Generate(decls []*Decl) string {
	cg := newCodeGen()
	cg.emitHeader()
	for _, d := range decls {
		cg.declCodegen(d)
	}
	return cg.w.String()
}

// emitHeader writes the fixed string constants the print statement
// needs, then switches to .text.
func (cg *CodeGen) emitHeader() {
	cg.w.Section(".data")
	cg.w.Label(".__STR_TRUE")
	cg.w.Directive(".string \"true\"")
	cg.w.Label(".__STR_FALSE")
	cg.w.Directive(".string \"false\"")
	cg.w.Label(".__STR_ARRAY")
	cg.w.Directive(".string \"(T_ARRAY)\"")
	cg.w.Label(".__STR_FUNCTION")
	cg.w.Directive(".string \"(T_FUNCTION)\"")
	cg.w.Section(".text")
}

// scratchAlloc returns the lowest free scratch index and marks it used.
func (cg *CodeGen) scratchAlloc() int {
	for r := range cg.scratch {
		if !cg.scratch[r] {
			cg.scratch[r] = true
			return r
		}
	}
	panic("compiler bug: all scratch registers are in use")
}

func (cg *CodeGen) scratchFree(r int) {
	if r < 0 || r >= len(cg.scratch) {
		panic(fmt.Sprintf("compiler bug: %d is not a valid scratch register", r))
	}
	cg.scratch[r] = false
}

func (cg *CodeGen) scratchName(r int) string {
	if r < 0 || r >= len(cg.scratch) {
		panic(fmt.Sprintf("compiler bug: %d is not a valid scratch register", r))
	}
	return asm.ScratchRegisters[r]
}

func (cg *CodeGen) labelCreate() int {
	l := cg.nextLabel
	cg.nextLabel++
	return l
}

func labelName(l int) string {
	return fmt.Sprintf(".L%d", l)
}

// symbolAddr renders the operand that addresses a symbol's storage:
// globals are rip-relative, locals and register-passed parameters sit
// below the base pointer, stack-passed parameters above it.
func (cg *CodeGen) symbolAddr(s *Symbol) string {
	if s == nil {
		panic("compiler bug: symbol not resolved before codegen")
	}

	switch s.Kind {
	case SymbolGlobal:
		return fmt.Sprintf("%s(%%rip)", s.Name)
	case SymbolLocal:
		// (which+1) converts the zero-based slot to an offset
		return fmt.Sprintf("-%d(%%rbp)", (s.Which+1)*8)
	case SymbolParam:
		if s.Which < numArgumentRegisters {
			return fmt.Sprintf("-%d(%%rbp)", (s.Which+1)*8)
		}
		return fmt.Sprintf("%d(%%rbp)", 32+(s.Which-numArgumentRegisters)*8)
	}
	panic(fmt.Sprintf("compiler bug: symbol kind %d not handled", s.Kind))
}

func (cg *CodeGen) exprCodegen(e *Expr) {
	if e == nil {
		return
	}

	switch e.Kind {
	case ExprName:
		addr := cg.symbolAddr(e.Symbol)
		e.Reg = cg.scratchAlloc()
		cg.w.Op("MOVQ %s, %s", addr, cg.scratchName(e.Reg))

	// literals
	case ExprStringLiteral:
		cg.w.Section(".data")
		strLabel := labelName(cg.labelCreate())
		cg.w.Label(strLabel)
		cg.w.Directive(".string \"%s\"", e.StringLiteral)
		cg.w.Section(".text")

		e.Reg = cg.scratchAlloc()
		cg.w.Op("LEAQ %s(%%rip), %s", strLabel, cg.scratchName(e.Reg))
	case ExprCharLiteral, ExprIntegerLiteral, ExprBooleanLiteral:
		e.Reg = cg.scratchAlloc()
		cg.w.Op("MOVQ $%d, %s", e.IntegerValue, cg.scratchName(e.Reg))

	// arithmetic expressions
	case ExprAdd:
		cg.exprCodegen(e.Left)
		cg.exprCodegen(e.Right)

		cg.w.Op("ADDQ %s, %s", cg.scratchName(e.Left.Reg), cg.scratchName(e.Right.Reg))

		e.Reg = e.Right.Reg
		cg.scratchFree(e.Left.Reg)
	case ExprSub:
		cg.exprCodegen(e.Left)
		cg.exprCodegen(e.Right)

		cg.w.Op("SUBQ %s, %s", cg.scratchName(e.Right.Reg), cg.scratchName(e.Left.Reg))

		e.Reg = e.Left.Reg
		cg.scratchFree(e.Right.Reg)
	case ExprMul:
		cg.exprCodegen(e.Left)
		cg.exprCodegen(e.Right)

		cg.w.Op("MOVQ %s, %%rax", cg.scratchName(e.Left.Reg))
		cg.w.Op("IMULQ %s", cg.scratchName(e.Right.Reg))
		cg.w.Op("MOVQ %%rax, %s", cg.scratchName(e.Right.Reg))

		e.Reg = e.Right.Reg
		cg.scratchFree(e.Left.Reg)
	case ExprDiv:
		cg.exprCodegen(e.Left)
		cg.exprCodegen(e.Right)

		cg.w.Op("MOVQ %s, %%rax", cg.scratchName(e.Left.Reg))
		cg.w.Op("CQO")
		cg.w.Op("IDIVQ %s", cg.scratchName(e.Right.Reg))
		cg.w.Op("MOVQ %%rax, %s", cg.scratchName(e.Left.Reg))

		e.Reg = e.Left.Reg
		cg.scratchFree(e.Right.Reg)
	case ExprModulo:
		cg.exprCodegen(e.Left)
		cg.exprCodegen(e.Right)

		cg.w.Op("MOVQ %s, %%rax", cg.scratchName(e.Left.Reg))
		cg.w.Op("CQO")
		cg.w.Op("IDIVQ %s", cg.scratchName(e.Right.Reg))
		cg.w.Op("MOVQ %%rdx, %s", cg.scratchName(e.Left.Reg))

		e.Reg = e.Left.Reg
		cg.scratchFree(e.Right.Reg)
	case ExprExponent:
		glog.Warning("FIXME: codegen for the exponent operator is unimplemented")
	case ExprNegate:
		cg.exprCodegen(e.Left)

		cg.w.Op("NEG %s", cg.scratchName(e.Left.Reg))

		e.Reg = e.Left.Reg

	// logical operations
	case ExprLogicalOr:
		cg.exprCodegen(e.Left)
		cg.exprCodegen(e.Right)

		leftZero := labelName(cg.labelCreate())
		rightZero := labelName(cg.labelCreate())
		endLabel := labelName(cg.labelCreate())

		cg.w.Op("CMP $0, %s", cg.scratchName(e.Left.Reg))
		cg.w.Op("JE %s", leftZero)
		cg.w.Op("MOV $1, %s", cg.scratchName(e.Left.Reg))
		cg.w.Op("JMP %s", endLabel)
		cg.w.Label(leftZero)

		cg.w.Op("CMP $0, %s", cg.scratchName(e.Right.Reg))
		cg.w.Op("JE %s", rightZero)
		cg.w.Op("MOV $1, %s", cg.scratchName(e.Left.Reg))
		cg.w.Op("JMP %s", endLabel)
		cg.w.Label(rightZero)

		cg.w.Op("MOV $0, %s", cg.scratchName(e.Left.Reg))
		cg.w.Label(endLabel)

		e.Reg = e.Left.Reg
		cg.scratchFree(e.Right.Reg)
	case ExprLogicalAnd:
		cg.exprCodegen(e.Left)
		cg.exprCodegen(e.Right)

		zeroLabel := labelName(cg.labelCreate())
		endLabel := labelName(cg.labelCreate())

		cg.w.Op("CMP $0, %s", cg.scratchName(e.Left.Reg))
		cg.w.Op("JE %s", zeroLabel)
		cg.w.Op("CMP $0, %s", cg.scratchName(e.Right.Reg))
		cg.w.Op("JE %s", zeroLabel)
		cg.w.Op("MOVQ $1, %s", cg.scratchName(e.Left.Reg))
		cg.w.Op("JMP %s", endLabel)

		cg.w.Label(zeroLabel)
		cg.w.Op("MOVQ $0, %s", cg.scratchName(e.Left.Reg))
		cg.w.Label(endLabel)

		e.Reg = e.Left.Reg
		cg.scratchFree(e.Right.Reg)
	case ExprLogicalNot:
		cg.exprCodegen(e.Left)

		isZero := labelName(cg.labelCreate())
		endLabel := labelName(cg.labelCreate())

		cg.w.Op("CMP $0, %s", cg.scratchName(e.Left.Reg))
		cg.w.Op("JE %s", isZero)

		cg.w.Op("XOR %s, %s", cg.scratchName(e.Left.Reg), cg.scratchName(e.Left.Reg))
		cg.w.Op("JMP %s", endLabel)
		cg.w.Label(isZero)

		cg.w.Op("MOVQ $1, %s", cg.scratchName(e.Left.Reg))
		cg.w.Label(endLabel)

		e.Reg = e.Left.Reg

	// comparisons
	case ExprCmpEqual, ExprCmpNotEqual, ExprCmpGT, ExprCmpGTEqual, ExprCmpLT, ExprCmpLTEqual:
		cg.exprCodegen(e.Left)
		cg.exprCodegen(e.Right)

		trueLabel := labelName(cg.labelCreate())
		endLabel := labelName(cg.labelCreate())

		cg.w.Op("CMP %s, %s", cg.scratchName(e.Right.Reg), cg.scratchName(e.Left.Reg))
		cg.w.Op("%s %s", comparisonJump(e.Kind), trueLabel)

		cg.w.Op("MOVQ $0, %s", cg.scratchName(e.Right.Reg))
		cg.w.Op("JMP %s", endLabel)
		cg.w.Label(trueLabel)

		cg.w.Op("MOVQ $1, %s", cg.scratchName(e.Right.Reg))
		cg.w.Label(endLabel)

		cg.scratchFree(e.Left.Reg)
		e.Reg = e.Right.Reg

	// assignments
	case ExprAssign:
		addr := cg.symbolAddr(e.Left.Symbol)

		cg.exprCodegen(e.Right)
		cg.w.Op("MOVQ %s, %s", cg.scratchName(e.Right.Reg), addr)
		e.Reg = e.Right.Reg
	case ExprIncrement:
		// the address must be computed and the operand loaded (through
		// the name case, which allocates the scratch) before the store
		addr := cg.symbolAddr(e.Left.Symbol)

		cg.exprCodegen(e.Left)
		cg.w.Op("INC %s", cg.scratchName(e.Left.Reg))
		cg.w.Op("MOVQ %s, %s", cg.scratchName(e.Left.Reg), addr)
		e.Reg = e.Left.Reg
	case ExprDecrement:
		addr := cg.symbolAddr(e.Left.Symbol)

		cg.exprCodegen(e.Left)
		cg.w.Op("DEC %s", cg.scratchName(e.Left.Reg))
		cg.w.Op("MOVQ %s, %s", cg.scratchName(e.Left.Reg), addr)
		e.Reg = e.Left.Reg

	// misc.
	case ExprCall:
		if e.Left == nil || e.Left.Kind != ExprName {
			panic("compiler bug: call node has no callee name")
		}

		// arguments are evaluated right to left, each pushed as soon as
		// it is computed, so the pops below hand the first six to the
		// argument registers in order and leave the rest on the stack
		for i := len(e.Args) - 1; i >= 0; i-- {
			arg := e.Args[i]
			cg.exprCodegen(arg)
			cg.w.Op("PUSHQ %s", cg.scratchName(arg.Reg))
			cg.scratchFree(arg.Reg)
		}
		for i := 0; i < len(e.Args) && i < numArgumentRegisters; i++ {
			cg.w.Op("POPQ %s", asm.ArgumentRegisters[i])
		}

		// zero floating point args
		cg.w.Op("XOR %%rax, %%rax")
		cg.w.Blank()

		// %r10 and %r11 live in the scratch pool but are caller-saved
		cg.w.Op("PUSHQ %%r10")
		cg.w.Op("PUSHQ %%r11")

		cg.w.Op("CALL %s", e.Left.Name)

		cg.w.Op("POPQ %%r11")
		cg.w.Op("POPQ %%r10")

		e.Reg = cg.scratchAlloc()
		cg.w.Op("MOVQ %%rax, %s", cg.scratchName(e.Reg))
	case ExprInitList:
		glog.Warning("FIXME: codegen for init lists outside global array initializers is unimplemented")
	case ExprSubscript:
		cg.exprCodegen(e.Right)

		baseReg := cg.scratchAlloc()
		baseName := cg.scratchName(baseReg)
		indexName := cg.scratchName(e.Right.Reg)

		// load the address of the array, then the indexed element;
		// elements are fixed at 8 bytes
		cg.w.Op("LEAQ %s, %s", cg.symbolAddr(e.Left.Symbol), baseName)
		cg.w.Op("MOVQ 0(%s, %s, 8), %s", baseName, indexName, indexName)

		e.Reg = e.Right.Reg
		cg.scratchFree(baseReg)
	default:
		panic(fmt.Sprintf("compiler bug: expr kind %d not handled", e.Kind))
	}
}

// comparisonJump selects the conditional jump matching a comparison
// kind.
func comparisonJump(kind ExprKind) string {
	switch kind {
	case ExprCmpEqual:
		return "JE"
	case ExprCmpNotEqual:
		return "JNE"
	case ExprCmpGT:
		return "JG"
	case ExprCmpGTEqual:
		return "JGE"
	case ExprCmpLT:
		return "JL"
	case ExprCmpLTEqual:
		return "JLE"
	}
	panic(fmt.Sprintf("compiler bug: expr kind %d is not a comparison", kind))
}

func (cg *CodeGen) stmtCodegen(s *Stmt) {
	if s == nil {
		return
	}

	switch s.Kind {
	case StmtDecl:
		cg.declCodegen(s.Decl)
	case StmtExpr:
		cg.exprCodegen(s.Expr)
		cg.scratchFree(s.Expr.Reg)
	case StmtIfElse:
		elseLabel := labelName(cg.labelCreate())
		doneLabel := labelName(cg.labelCreate())

		// condition
		cg.exprCodegen(s.Expr)
		cg.w.Op("CMP $0, %s", cg.scratchName(s.Expr.Reg))
		cg.scratchFree(s.Expr.Reg)
		cg.w.Op("JE %s", elseLabel)

		// if branch
		cg.stmtCodegen(s.Body)
		cg.w.Op("JMP %s", doneLabel)

		// else branch
		cg.w.Label(elseLabel)
		cg.stmtCodegen(s.ElseBody)
		cg.w.Label(doneLabel)
	case StmtFor:
		topLabel := labelName(cg.labelCreate())
		doneLabel := labelName(cg.labelCreate())

		if s.InitExpr != nil {
			cg.exprCodegen(s.InitExpr)
			cg.scratchFree(s.InitExpr.Reg)
		}

		cg.w.Label(topLabel)

		if s.Expr != nil {
			cg.exprCodegen(s.Expr)
			cg.w.Op("CMP $0, %s", cg.scratchName(s.Expr.Reg))
			cg.scratchFree(s.Expr.Reg)
			cg.w.Op("JE %s", doneLabel)
		}

		cg.stmtCodegen(s.Body)

		if s.NextExpr != nil {
			cg.exprCodegen(s.NextExpr)
			cg.scratchFree(s.NextExpr.Reg)
		}
		cg.w.Op("JMP %s", topLabel)

		cg.w.Label(doneLabel)
	case StmtPrint:
		cg.printCodegen(s)
	case StmtReturn:
		if s.Expr != nil {
			cg.exprCodegen(s.Expr)
			cg.w.Op("MOVQ %s, %%rax", cg.scratchName(s.Expr.Reg))
			cg.w.Op("JMP .%s_epilogue", s.FunctionName)
			cg.scratchFree(s.Expr.Reg)
		} else {
			cg.w.Op("JMP .%s_epilogue", s.FunctionName)
		}
	case StmtBlock:
		for _, child := range s.Stmts {
			cg.stmtCodegen(child)
		}
	default:
		panic(fmt.Sprintf("compiler bug: stmt kind %d not handled", s.Kind))
	}

	cg.w.Blank()
}

// printCodegen lowers a print statement into one printf call: a format
// string assembled from the argument types, the first five values in
// %rsi..%r9 (the format string takes %rdi), the rest on the stack.
func (cg *CodeGen) printCodegen(s *Stmt) {
	specifiers := lo.Map(s.Exprs, func(arg *Expr, _ int) string {
		switch arg.Type.Kind {
		case TypeChar:
			return "%c"
		case TypeInteger:
			return "%d"
		default:
			// booleans, arrays and functions are rewritten below into
			// pointers at one of the fixed .data strings
			return "%s"
		}
	})
	formatString := strings.Join(specifiers, "")

	for _, arg := range lo.Reverse(append([]*Expr{}, s.Exprs...)) {
		cg.exprCodegen(arg)

		switch arg.Type.Kind {
		case TypeBoolean:
			falseLabel := labelName(cg.labelCreate())
			endLabel := labelName(cg.labelCreate())

			cg.w.Op("CMP $0, %s", cg.scratchName(arg.Reg))
			cg.w.Op("JE %s", falseLabel)

			cg.w.Op("LEAQ .__STR_TRUE(%%rip), %s", cg.scratchName(arg.Reg))
			cg.w.Op("JMP %s", endLabel)

			cg.w.Label(falseLabel)
			cg.w.Op("LEAQ .__STR_FALSE(%%rip), %s", cg.scratchName(arg.Reg))

			cg.w.Label(endLabel)
		case TypeArray:
			cg.w.Op("LEAQ .__STR_ARRAY(%%rip), %s", cg.scratchName(arg.Reg))
		case TypeFunction:
			cg.w.Op("LEAQ .__STR_FUNCTION(%%rip), %s", cg.scratchName(arg.Reg))
		}

		cg.w.Op("PUSHQ %s", cg.scratchName(arg.Reg))
		cg.scratchFree(arg.Reg)
	}

	for i := 0; i < len(s.Exprs) && i < numArgumentRegisters-1; i++ {
		cg.w.Op("POPQ %s", asm.ArgumentRegisters[i+1])
	}

	formatLabel := labelName(cg.labelCreate())

	cg.w.Section(".data")
	cg.w.Label(formatLabel)
	cg.w.Directive(".string \"%s\"", formatString)
	cg.w.Section(".text")

	cg.w.Op("LEAQ %s(%%rip), %s", formatLabel, asm.ArgumentRegisters[0])

	cg.w.Op("XOR %%rax, %%rax")

	cg.w.Op("PUSHQ %%r10")
	cg.w.Op("PUSHQ %%r11")

	cg.w.Op("CALL printf@PLT")

	cg.w.Op("POPQ %%r11")
	cg.w.Op("POPQ %%r10")
}

func (cg *CodeGen) declCodegen(d *Decl) {
	if d == nil {
		return
	}

	switch d.Type.Kind {
	case TypeFunction:
		cg.functionCodegen(d)
	case TypeArray:
		cg.arrayCodegen(d)
	case TypeString:
		cg.stringCodegen(d)
	case TypeBoolean, TypeChar, TypeInteger:
		cg.scalarCodegen(d)
	case TypeVoid:
		panic("compiler bug: cannot create variable of type void")
	default:
		panic(fmt.Sprintf("compiler bug: type kind %d not handled", d.Type.Kind))
	}
}

func (cg *CodeGen) functionCodegen(d *Decl) {
	cg.w.Section(".text")
	cg.w.Global(d.Name)
	cg.w.Label(d.Name)

	// Prologue: save the old base pointer and set the new one, spill
	// the register-passed arguments into their frame slots, make room
	// for locals, then preserve the callee-saved scratch registers.
	cg.w.Op("PUSHQ %%rbp")
	cg.w.Op("MOVQ %%rsp, %%rbp")

	for i := 0; i < len(d.Type.Params) && i < numArgumentRegisters; i++ {
		cg.w.Op("PUSHQ %s", asm.ArgumentRegisters[i])
	}

	if d.LocalVarCount > 0 {
		cg.w.Blank()
		cg.w.Op("SUBQ $%d, %%rsp", 8*d.LocalVarCount)
		cg.w.Blank()
	}

	cg.w.Op("PUSHQ %%rbx")
	cg.w.Op("PUSHQ %%r12")
	cg.w.Op("PUSHQ %%r13")
	cg.w.Op("PUSHQ %%r14")
	cg.w.Op("PUSHQ %%r15")
	cg.w.Blank()

	// Body
	cg.stmtCodegen(d.Code)

	// Epilogue
	cg.w.Label(fmt.Sprintf(".%s_epilogue", d.Name))

	cg.w.Op("POPQ %%r15")
	cg.w.Op("POPQ %%r14")
	cg.w.Op("POPQ %%r13")
	cg.w.Op("POPQ %%r12")
	cg.w.Op("POPQ %%rbx")

	cg.w.Op("MOVQ %%rbp, %%rsp")
	cg.w.Op("POPQ %%rbp")

	cg.w.Op("RET")
}

func (cg *CodeGen) arrayCodegen(d *Decl) {
	if d.Symbol.Kind != SymbolGlobal {
		glog.Warning("FIXME: codegen for local arrays is unimplemented")
		return
	}

	cg.w.Global(d.Symbol.Name)
	cg.w.Section(".data")
	cg.w.Label(d.Symbol.Name)

	// the size expression is an integer literal whenever typechecking
	// passed; without one, the initializer supplies the length
	size := 0
	if d.Type.SizeExpr != nil {
		size = d.Type.SizeExpr.IntegerValue
	} else if d.Value != nil {
		size = len(d.Value.Args)
	}

	if d.Value != nil {
		emitted := 0
		for _, element := range d.Value.Args {
			if emitted >= size {
				break
			}

			switch element.Type.Kind {
			case TypeBoolean, TypeChar, TypeInteger:
				cg.w.Directive(".quad %d", element.IntegerValue)
			case TypeString:
				glog.Warning("FIXME: arrays of strings are unimplemented")
			case TypeArray:
				glog.Warning("FIXME: multi-dimensional arrays are unimplemented")
			}

			emitted++
		}

		if emitted < size {
			cg.w.Directive(".zero %d", (size-emitted)*8)
		}
	} else {
		cg.w.Directive(".zero %d", size*8)
	}

	cg.w.Section(".text")
	cg.w.Blank()
}

func (cg *CodeGen) stringCodegen(d *Decl) {
	initValue := ""
	if d.Value != nil {
		initValue = d.Value.StringLiteral
	}

	if d.Symbol.Kind == SymbolGlobal {
		strLabel := labelName(cg.labelCreate())

		// the global holds a pointer to the literal
		cg.w.Global(d.Symbol.Name)
		cg.w.Section(".data")
		cg.w.Label(strLabel)
		cg.w.Directive(".string \"%s\"", initValue)

		cg.w.Label(d.Symbol.Name)
		cg.w.Directive(".quad %s", strLabel)

		cg.w.Section(".text")
		cg.w.Blank()
	} else {
		reg := cg.scratchAlloc()
		strLabel := labelName(cg.labelCreate())

		cg.w.Section(".data")
		cg.w.Label(strLabel)
		cg.w.Directive(".string \"%s\"", initValue)

		cg.w.Section(".text")
		cg.w.Blank()
		cg.w.Op("LEAQ %s(%%rip), %s", strLabel, cg.scratchName(reg))
		cg.w.Op("MOVQ %s, %s", cg.scratchName(reg), cg.symbolAddr(d.Symbol))

		cg.scratchFree(reg)
	}
}

func (cg *CodeGen) scalarCodegen(d *Decl) {
	// synthesize a zero literal of the declared type when no
	// initializer was given
	value := d.Value
	if value == nil {
		switch d.Type.Kind {
		case TypeBoolean:
			value = NewBooleanLiteral(false)
		case TypeChar:
			value = NewCharLiteral(0)
		case TypeInteger:
			value = NewIntegerLiteral(0)
		}
	}

	if d.Symbol.Kind == SymbolGlobal {
		cg.w.Section(".data")
		cg.w.Label(d.Symbol.Name)
		cg.w.Directive(".quad %d", value.IntegerValue)
		cg.w.Section(".text")
		cg.w.Blank()
	} else {
		cg.exprCodegen(value)
		cg.w.Op("MOVQ %s, %s", cg.scratchName(value.Reg), cg.symbolAddr(d.Symbol))
		cg.scratchFree(value.Reg)
	}
}
