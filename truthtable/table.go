// Package truthtable enumerates boolean equations over every total
// assignment of their variables and renders the results side by side.
package truthtable

import (
	"errors"

	"github.com/LinusCDE/booleq/logic"
	log "github.com/sirupsen/logrus"
)

// A Table holds one or more equations together with the ordered union of the
// distinct variable names they reach. Names are collected in first-seen
// order, left to right across each equation in turn.
type Table struct {
	nodes []logic.Node
	names []string
	vars  map[string][]*logic.Variable // all instances per name, across all equations
}

// A Row is the outcome of one total assignment: one value per discovered
// name (parallel to Names) and one result per equation.
type Row struct {
	Assignment []bool
	Results    []bool
}

// New builds a table over the given equations.
func New(nodes ...logic.Node) (*Table, error) {
	if len(nodes) == 0 {
		return nil, errors.New("truthtable: at least one equation is required")
	}
	t := &Table{nodes: nodes, vars: make(map[string][]*logic.Variable)}
	for _, v := range logic.Vars(nodes...) {
		if _, ok := t.vars[v.Name()]; !ok {
			t.names = append(t.names, v.Name())
		}
		t.vars[v.Name()] = append(t.vars[v.Name()], v)
	}
	log.Debugf("truth table over %d equations, names %v", len(nodes), t.names)
	return t, nil
}

// Names returns the discovered variable names in first-seen order.
func (t *Table) Names() []string { return t.names }

// Enumerate produces the 2^n rows of the table in ascending binary counting
// order: all-false first, all-true last, with the first discovered name as
// the most significant position. Every variable instance sharing an assigned
// name is set, across all equations. Variable states held before the call
// are restored afterwards.
func (t *Table) Enumerate() []Row {
	defer t.restore(t.save())
	n := len(t.names)
	rows := make([]Row, 0, 1<<n)
	for code := 0; code < 1<<n; code++ {
		row := Row{Assignment: make([]bool, n), Results: make([]bool, len(t.nodes))}
		for i, name := range t.names {
			value := code>>(n-1-i)&1 == 1
			row.Assignment[i] = value
			for _, v := range t.vars[name] {
				v.Assign(value)
			}
		}
		for j, node := range t.nodes {
			s, err := node.State()
			if err != nil {
				// The assignment is total over every reachable
				// variable, so evaluation cannot be undecided.
				panic(err)
			}
			row.Results[j] = s
		}
		rows = append(rows, row)
	}
	log.Debugf("enumerated %d assignments", len(rows))
	return rows
}

// Identical reports whether all equations evaluate identically on every row,
// i.e. whether they are logically equivalent over the discovered names.
func (t *Table) Identical() bool {
	for _, row := range t.Enumerate() {
		for _, r := range row.Results[1:] {
			if r != row.Results[0] {
				return false
			}
		}
	}
	return true
}

type savedState struct {
	v     *logic.Variable
	value bool
	ok    bool
}

func (t *Table) save() []savedState {
	var states []savedState
	for _, instances := range t.vars {
		for _, v := range instances {
			value, ok := v.Value()
			states = append(states, savedState{v: v, value: value, ok: ok})
		}
	}
	return states
}

func (t *Table) restore(states []savedState) {
	for _, s := range states {
		if s.ok {
			s.v.Assign(s.value)
		} else {
			s.v.Unset()
		}
	}
}
