package expression

import "github.com/ryogrid/KujiraDB/lib/types"

type ConstantValue struct {
	*AbstractExpression
	value types.Value
}

func NewConstantValue(value types.Value) Expression {
	return &ConstantValue{&AbstractExpression{nil}, value}
}

func (c *ConstantValue) GetValue() types.Value {
	return c.value
}

func (c *ConstantValue) IsConstant() bool {
	return true
}

func (c *ConstantValue) CanThrow() bool {
	return false
}

func (c *ConstantValue) Clone() Expression {
	return NewConstantValue(c.value)
}

func (c *ConstantValue) GetDebugStr() string {
	return c.value.ToString()
}
