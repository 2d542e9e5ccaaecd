package expression

/**
 * Expression is the AST attached to Calculation and Filter plan nodes.
 *
 * The hierarchy is sealed: constant, variable reference, attribute access,
 * comparison, logical operation and function call. Optimizer rules inspect
 * trees through IsConstant/CanThrow and rebuild them through Clone.
 */
type Expression interface {
	GetChildAt(index uint32) Expression
	GetChildren() []Expression
	// IsConstant reports whether the whole subtree evaluates to the same
	// value on every row
	IsConstant() bool
	// CanThrow reports whether evaluation may raise a runtime error. a
	// throwing expression must never be folded or removed
	CanThrow() bool
	Clone() Expression
	GetDebugStr() string
}

type AbstractExpression struct {
	children []Expression
}

func (e *AbstractExpression) GetChildAt(index uint32) Expression {
	return e.children[index]
}

func (e *AbstractExpression) GetChildren() []Expression {
	return e.children
}
