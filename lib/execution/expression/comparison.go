package expression

/** The type of comparison operation */
type ComparisonType int

const (
	Equal ComparisonType = iota
	NotEqual
	GreaterThan
	GreaterThanOrEqual
	LessThan
	LessThanOrEqual
)

type Comparison struct {
	*AbstractExpression
	comparisonType ComparisonType
}

func NewComparison(left Expression, right Expression, comparisonType ComparisonType) Expression {
	return &Comparison{&AbstractExpression{[]Expression{left, right}}, comparisonType}
}

func (c *Comparison) GetComparisonType() ComparisonType {
	return c.comparisonType
}

func (c *Comparison) IsConstant() bool {
	return c.GetChildAt(0).IsConstant() && c.GetChildAt(1).IsConstant()
}

func (c *Comparison) CanThrow() bool {
	return c.GetChildAt(0).CanThrow() || c.GetChildAt(1).CanThrow()
}

func (c *Comparison) Clone() Expression {
	return NewComparison(c.GetChildAt(0).Clone(), c.GetChildAt(1).Clone(), c.comparisonType)
}

func (c *Comparison) GetDebugStr() string {
	var op string
	switch c.comparisonType {
	case Equal:
		op = "=="
	case NotEqual:
		op = "!="
	case GreaterThan:
		op = ">"
	case GreaterThanOrEqual:
		op = ">="
	case LessThan:
		op = "<"
	case LessThanOrEqual:
		op = "<="
	}
	return "(" + c.GetChildAt(0).GetDebugStr() + " " + op + " " + c.GetChildAt(1).GetDebugStr() + ")"
}
