package expression

// AttributeAccess reads one named attribute of its child value (a variable
// reference or a nested attribute access).
type AttributeAccess struct {
	*AbstractExpression
	attrName string
}

func NewAttributeAccess(child Expression, attrName string) Expression {
	return &AttributeAccess{&AbstractExpression{[]Expression{child}}, attrName}
}

func (a *AttributeAccess) GetAttrName() string {
	return a.attrName
}

func (a *AttributeAccess) IsConstant() bool {
	return a.GetChildAt(0).IsConstant()
}

func (a *AttributeAccess) CanThrow() bool {
	return a.GetChildAt(0).CanThrow()
}

func (a *AttributeAccess) Clone() Expression {
	return NewAttributeAccess(a.GetChildAt(0).Clone(), a.attrName)
}

func (a *AttributeAccess) GetDebugStr() string {
	return a.GetChildAt(0).GetDebugStr() + "." + a.attrName
}
