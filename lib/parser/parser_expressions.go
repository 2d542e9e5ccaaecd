package parser

import (
	"github.com/ryogrid/KujiraDB/lib/execution/expression"
	"github.com/ryogrid/KujiraDB/lib/types"
)

type BinaryOpExpType int

const (
	Compare BinaryOpExpType = iota
	Logical
	AttributeName
	Constant
	Empty
)

// BinaryOpExpression is the parse-level condition tree. Left_ and Right_
// hold either a nested *BinaryOpExpression, an attribute name (*string) or
// a constant (*types.Value). A leaf stores its payload in Left_ with both
// operation types set to -1.
type BinaryOpExpression struct {
	LogicalOperationType_    expression.LogicalOpType
	ComparisonOperationType_ expression.ComparisonType
	Left_                    interface{}
	Right_                   interface{}
}

func (expr *BinaryOpExpression) GetType() BinaryOpExpType {
	if expr.ComparisonOperationType_ != -1 {
		return Compare
	} else if expr.LogicalOperationType_ != -1 {
		return Logical
	}
	switch expr.Left_.(type) {
	case *string:
		return AttributeName
	case *types.Value:
		return Constant
	default:
		return Empty
	}
}
