package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kroening-labs/mcheck/internal/property"
)

func TestLoadProblemBuildsSystemAndProperties(t *testing.T) {
	pf := problemFile{
		Trans: exprJSON{
			Kind: "and",
			Ops: []exprJSON{
				{Kind: "equal",
					LHS: &exprJSON{Kind: "predicate", Name: "p'"},
					RHS: &exprJSON{Kind: "predicate", Name: "p"},
				},
			},
		},
		Init: exprJSON{Kind: "predicate", Name: "p"},
		Properties: []propertyJSON{
			{Name: "ag_p", Expr: exprJSON{Kind: "AG", Op: &exprJSON{Kind: "predicate", Name: "p"}}},
			{Name: "assumption", Expr: exprJSON{Kind: "AG", Op: &exprJSON{Kind: "predicate", Name: "q"}}, Assumed: true},
			{Name: "off", Expr: exprJSON{Kind: "predicate", Name: "r"}, Disabled: true},
		},
	}

	data, err := json.Marshal(pf)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "problem.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	sys, records, err := loadProblem(path)
	if err != nil {
		t.Fatalf("loadProblem: %v", err)
	}
	if sys == nil {
		t.Fatal("expected a non-nil system")
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(records))
	}

	byName := map[string]*property.Record{}
	for _, r := range records {
		byName[r.Name] = r
	}

	if byName["ag_p"].Status != property.StatusOpen {
		t.Errorf("ag_p should start open, got %s", byName["ag_p"].Status)
	}
	if byName["assumption"].Status != property.StatusAssumed {
		t.Errorf("assumption should be marked assumed, got %s", byName["assumption"].Status)
	}
	if byName["off"].Status != property.StatusDisabled {
		t.Errorf("off should be marked disabled, got %s", byName["off"].Status)
	}
}

func TestLoadProblemRejectsEmptyPropertyList(t *testing.T) {
	pf := problemFile{
		Trans: exprJSON{Kind: "bool", Value: true},
		Init:  exprJSON{Kind: "bool", Value: true},
	}
	data, _ := json.Marshal(pf)

	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, _, err := loadProblem(path); err == nil {
		t.Error("expected an error for a property file with no properties")
	}
}

func TestLoadProblemRejectsUnknownKind(t *testing.T) {
	pf := problemFile{
		Trans: exprJSON{Kind: "bool", Value: true},
		Init:  exprJSON{Kind: "bool", Value: true},
		Properties: []propertyJSON{
			{Name: "bad", Expr: exprJSON{Kind: "not_a_real_kind"}},
		},
	}
	data, _ := json.Marshal(pf)

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, _, err := loadProblem(path); err == nil {
		t.Error("expected an error for an unsupported expression kind")
	}
}
