package ast

import (
	"fmt"
)

// Node is the base interface for all AST nodes
type Node interface {
	String() string
}

// Expression represents a boolean row condition
type Expression interface {
	Node
	expressionNode()
}

// Comparison: column op literal, e.g. A > 2
type Comparison struct {
	Column   string
	Operator string      // ">", ">=", "<", "<=", "==", "!="
	Value    interface{} // float64, string or bool
}

func (c *Comparison) expressionNode() {}
func (c *Comparison) String() string {
	if s, ok := c.Value.(string); ok {
		return fmt.Sprintf("%s %s '%s'", c.Column, c.Operator, s)
	}
	return fmt.Sprintf("%s %s %v", c.Column, c.Operator, c.Value)
}

// LogicalExpression: left AND/OR right
type LogicalExpression struct {
	Left     Expression
	Operator string // "and", "or"
	Right    Expression
}

func (l *LogicalExpression) expressionNode() {}
func (l *LogicalExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", l.Left.String(), l.Operator, l.Right.String())
}

// NotExpression negates its operand
type NotExpression struct {
	Operand Expression
}

func (n *NotExpression) expressionNode() {}
func (n *NotExpression) String() string {
	return fmt.Sprintf("not %s", n.Operand.String())
}
