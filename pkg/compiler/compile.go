package compiler

import (
	"github.com/pkg/errors"
)

// Compile runs the whole pipeline over one source text and returns the
// generated assembly. Phases run in order — lex, parse, resolve,
// typecheck, generate — and the pipeline stops at the first phase that
// accumulated any error.
func Compile(src string) (string, error) {
	tokens, err := Lex(src)
	if err != nil {
		return "", errors.Wrap(err, "lex")
	}

	decls, err := Parse(tokens, src)
	if err != nil {
		return "", errors.Wrap(err, "parse")
	}

	if err := ResolveProgram(decls); err != nil {
		return "", errors.Wrap(err, "resolve")
	}

	if err := CheckProgram(decls); err != nil {
		return "", errors.Wrap(err, "typecheck")
	}

	return Generate(decls), nil
}
