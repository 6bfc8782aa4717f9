package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kroening-labs/mcheck/internal/expr"
	"github.com/kroening-labs/mcheck/internal/property"
	"github.com/kroening-labs/mcheck/internal/trans"
)

// problemFile is the on-disk shape of a --property-file: with no HDL
// parser or symbol table in this tree, the CLI's input format is a
// direct JSON serialization of this module's own expression AST
// rather than any SVA/Verilog surface syntax.
type problemFile struct {
	Trans      exprJSON       `json:"trans"`
	Init       exprJSON       `json:"init"`
	Properties []propertyJSON `json:"properties"`
}

type propertyJSON struct {
	Name     string   `json:"name"`
	Expr     exprJSON `json:"expr"`
	Assumed  bool     `json:"assumed,omitempty"`
	Disabled bool     `json:"disabled,omitempty"`
}

// exprJSON is a recursive wire representation of expr.Expr.
type exprJSON struct {
	Kind  string     `json:"kind"`
	Name  string     `json:"name,omitempty"`
	Value bool       `json:"value,omitempty"`
	Op    *exprJSON  `json:"op,omitempty"`
	LHS   *exprJSON  `json:"lhs,omitempty"`
	RHS   *exprJSON  `json:"rhs,omitempty"`
	Ops   []exprJSON `json:"ops,omitempty"`
	Cond  *exprJSON  `json:"cond,omitempty"`
	Then  *exprJSON  `json:"then,omitempty"`
	Else  *exprJSON  `json:"else,omitempty"`
	From  int        `json:"from,omitempty"`
	To    int        `json:"to,omitempty"`
}

func loadProblem(path string) (*trans.System, []*property.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read property file: %w", err)
	}

	var pf problemFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, nil, fmt.Errorf("parse property file: %w", err)
	}

	b := expr.NewBuilder()
	transExpr, err := buildExpr(b, pf.Trans)
	if err != nil {
		return nil, nil, fmt.Errorf("trans: %w", err)
	}
	initExpr, err := buildExpr(b, pf.Init)
	if err != nil {
		return nil, nil, fmt.Errorf("init: %w", err)
	}
	sys := trans.NewSystem(b, transExpr, initExpr)

	if len(pf.Properties) == 0 {
		return sys, nil, fmt.Errorf("property file declares no properties")
	}

	records := make([]*property.Record, 0, len(pf.Properties))
	for _, pj := range pf.Properties {
		body, err := buildExpr(b, pj.Expr)
		if err != nil {
			return nil, nil, fmt.Errorf("property %q: %w", pj.Name, err)
		}
		r := property.NewRecord(b, pj.Name, body)
		switch {
		case pj.Disabled:
			r.MarkDisabled()
		case pj.Assumed:
			r.MarkAssumed()
		}
		records = append(records, r)
	}

	return sys, records, nil
}

func buildExpr(b *expr.Builder, j exprJSON) (expr.Expr, error) {
	switch j.Kind {
	case "predicate":
		return b.Predicate(j.Name), nil
	case "bool":
		return b.Bool(j.Value), nil
	case "not":
		op, err := buildExpr(b, *j.Op)
		if err != nil {
			return expr.Expr{}, err
		}
		return b.Not(op), nil
	case "and", "or":
		ops := make([]expr.Expr, len(j.Ops))
		for i, o := range j.Ops {
			op, err := buildExpr(b, o)
			if err != nil {
				return expr.Expr{}, err
			}
			ops[i] = op
		}
		if j.Kind == "and" {
			return b.And(ops...), nil
		}
		return b.Or(ops...), nil
	case "implies", "equal":
		lhs, err := buildExpr(b, *j.LHS)
		if err != nil {
			return expr.Expr{}, err
		}
		rhs, err := buildExpr(b, *j.RHS)
		if err != nil {
			return expr.Expr{}, err
		}
		if j.Kind == "implies" {
			return b.Implies(lhs, rhs), nil
		}
		return b.Eq(lhs, rhs), nil
	case "if":
		cond, err := buildExpr(b, *j.Cond)
		if err != nil {
			return expr.Expr{}, err
		}
		t, err := buildExpr(b, *j.Then)
		if err != nil {
			return expr.Expr{}, err
		}
		f, err := buildExpr(b, *j.Else)
		if err != nil {
			return expr.Expr{}, err
		}
		return b.If(cond, t, f), nil
	case "AG", "AF", "AX", "EX", "EF", "EG", "X", "F", "G", "sva_always", "sva_s_eventually", "sva_nexttime", "sva_s_nexttime":
		op, err := buildExpr(b, *j.Op)
		if err != nil {
			return expr.Expr{}, err
		}
		return buildUnaryTemporal(b, j.Kind, op), nil
	default:
		return expr.Expr{}, fmt.Errorf("unsupported expression kind %q", j.Kind)
	}
}

func buildUnaryTemporal(b *expr.Builder, kind string, op expr.Expr) expr.Expr {
	switch kind {
	case "AG":
		return b.AG(op)
	case "AF":
		return b.AF(op)
	case "AX":
		return b.AX(op)
	case "EX":
		return b.EX(op)
	case "EF":
		return b.EF(op)
	case "EG":
		return b.EG(op)
	case "X":
		return b.X(op)
	case "F":
		return b.F(op)
	case "G":
		return b.G(op)
	case "sva_always":
		return b.SVAAlways(op)
	case "sva_s_eventually":
		return b.SVASEventually(op)
	case "sva_nexttime":
		return b.SVANextTime(op)
	case "sva_s_nexttime":
		return b.SVASNextTime(op)
	default:
		panic("unreachable: buildExpr and buildUnaryTemporal kind lists must match")
	}
}
