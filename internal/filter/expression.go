// Package filter models search predicates as an explicit boolean tree that storage
// compiles into a query. Trees are plain data: build them with the constructors,
// check them with Validate, and hand them to a store.
package filter

import (
	"errors"
	"fmt"
	"strings"
)

// Op is a leaf comparison operator.
type Op string

const (
	OpEquals    Op = "equals"
	OpNotEquals Op = "notEquals"
	OpContains  Op = "contains"
)

// GroupKind joins the children of a Group.
type GroupKind string

const (
	KindAnd GroupKind = "and"
	KindOr  GroupKind = "or"
)

var (
	// ErrEmptyGroup is returned for an AND/OR group without children.
	ErrEmptyGroup = errors.New("filter group has no predicates")

	// ErrUnknownField is returned when a leaf names a field the target entity lacks.
	ErrUnknownField = errors.New("unknown filter field")

	// ErrUnknownOperator is returned for an operator outside equals/notEquals/contains.
	ErrUnknownOperator = errors.New("unknown filter operator")

	// ErrUnknownNode is returned for an Expression that is neither *Leaf nor *Group.
	ErrUnknownNode = errors.New("unknown filter node")
)

// Expression is a node of a filter tree: a *Leaf or a *Group.
type Expression interface {
	fmt.Stringer
	isExpression()
}

// Leaf compares one field against a value.
type Leaf struct {
	Field string
	Op    Op
	Value any
}

// Group combines child expressions with AND or OR.
type Group struct {
	Kind     GroupKind
	Children []Expression
}

func (*Leaf) isExpression()  {}
func (*Group) isExpression() {}

// Equals builds `field == value`.
func Equals(field string, value any) *Leaf { return &Leaf{Field: field, Op: OpEquals, Value: value} }

// NotEquals builds `field != value`.
func NotEquals(field string, value any) *Leaf {
	return &Leaf{Field: field, Op: OpNotEquals, Value: value}
}

// Contains builds a substring match of value within field.
func Contains(field string, value string) *Leaf {
	return &Leaf{Field: field, Op: OpContains, Value: value}
}

// And requires every child to match.
func And(children ...Expression) *Group { return &Group{Kind: KindAnd, Children: children} }

// Or requires at least one child to match.
func Or(children ...Expression) *Group { return &Group{Kind: KindOr, Children: children} }

func (l *Leaf) String() string {
	return fmt.Sprintf("%s %s %v", l.Field, l.Op, l.Value)
}

func (g *Group) String() string {
	parts := make([]string, 0, len(g.Children))
	for _, c := range g.Children {
		parts = append(parts, c.String())
	}
	return "(" + strings.Join(parts, " "+strings.ToUpper(string(g.Kind))+" ") + ")"
}

// FieldSet maps the filterable field names of an entity to storage column names.
type FieldSet map[string]string

// Column resolves a field name.
func (fs FieldSet) Column(field string) (string, bool) {
	col, ok := fs[field]
	return col, ok
}

// Validate checks expr against fields. A nil expression is valid and means "no filter".
func Validate(expr Expression, fields FieldSet) error {
	switch e := expr.(type) {
	case nil:
		return nil
	case *Leaf:
		if e == nil {
			return ErrUnknownNode
		}
		if _, ok := fields.Column(e.Field); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, e.Field)
		}
		switch e.Op {
		case OpEquals, OpNotEquals:
		case OpContains:
			if _, ok := e.Value.(string); !ok {
				return fmt.Errorf("%w: contains on %q needs a string value", ErrUnknownOperator, e.Field)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownOperator, e.Op)
		}
		return nil
	case *Group:
		if e == nil {
			return ErrUnknownNode
		}
		if e.Kind != KindAnd && e.Kind != KindOr {
			return fmt.Errorf("%w: group kind %q", ErrUnknownOperator, e.Kind)
		}
		if len(e.Children) == 0 {
			return ErrEmptyGroup
		}
		for _, c := range e.Children {
			if err := Validate(c, fields); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownNode, expr)
	}
}
