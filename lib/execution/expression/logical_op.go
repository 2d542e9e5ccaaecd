package expression

/** The type of logical operation */
type LogicalOpType int

const (
	AND LogicalOpType = iota
	OR
	NOT
)

// LogicalOp combines boolean subtrees. NOT uses only the left child.
type LogicalOp struct {
	*AbstractExpression
	logicalOpType LogicalOpType
}

func NewLogicalOp(left Expression, right Expression, logicalOpType LogicalOpType) Expression {
	if logicalOpType == NOT {
		return &LogicalOp{&AbstractExpression{[]Expression{left}}, logicalOpType}
	}
	return &LogicalOp{&AbstractExpression{[]Expression{left, right}}, logicalOpType}
}

func (l *LogicalOp) GetLogicalOpType() LogicalOpType {
	return l.logicalOpType
}

func (l *LogicalOp) IsConstant() bool {
	for _, child := range l.GetChildren() {
		if !child.IsConstant() {
			return false
		}
	}
	return true
}

func (l *LogicalOp) CanThrow() bool {
	for _, child := range l.GetChildren() {
		if child.CanThrow() {
			return true
		}
	}
	return false
}

func (l *LogicalOp) Clone() Expression {
	if l.logicalOpType == NOT {
		return NewLogicalOp(l.GetChildAt(0).Clone(), nil, NOT)
	}
	return NewLogicalOp(l.GetChildAt(0).Clone(), l.GetChildAt(1).Clone(), l.logicalOpType)
}

func (l *LogicalOp) GetDebugStr() string {
	switch l.logicalOpType {
	case AND:
		return "(" + l.GetChildAt(0).GetDebugStr() + " && " + l.GetChildAt(1).GetDebugStr() + ")"
	case OR:
		return "(" + l.GetChildAt(0).GetDebugStr() + " || " + l.GetChildAt(1).GetDebugStr() + ")"
	default:
		return "(!" + l.GetChildAt(0).GetDebugStr() + ")"
	}
}
