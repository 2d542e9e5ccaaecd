package expression

// VariableRef reads the value another plan node bound to a variable. The
// referenced Variable is shared, not copied, so identity survives plan
// cloning and setter lookup by id keeps working on clones.
type VariableRef struct {
	*AbstractExpression
	variable *Variable
}

func NewVariableRef(variable *Variable) Expression {
	return &VariableRef{&AbstractExpression{nil}, variable}
}

func (v *VariableRef) GetVariable() *Variable {
	return v.variable
}

func (v *VariableRef) IsConstant() bool {
	return false
}

func (v *VariableRef) CanThrow() bool {
	return false
}

func (v *VariableRef) Clone() Expression {
	return NewVariableRef(v.variable)
}

func (v *VariableRef) GetDebugStr() string {
	return v.variable.Name_
}
