package expression

// FunctionCall applies a named function to its argument expressions. Until
// per-function purity metadata exists every call is treated as possibly
// throwing, which keeps the removal rules away from it.
type FunctionCall struct {
	*AbstractExpression
	funcName string
}

func NewFunctionCall(funcName string, args []Expression) Expression {
	return &FunctionCall{&AbstractExpression{args}, funcName}
}

func (f *FunctionCall) GetFuncName() string {
	return f.funcName
}

func (f *FunctionCall) IsConstant() bool {
	for _, child := range f.GetChildren() {
		if !child.IsConstant() {
			return false
		}
	}
	return true
}

func (f *FunctionCall) CanThrow() bool {
	return true
}

func (f *FunctionCall) Clone() Expression {
	args := make([]Expression, 0, len(f.GetChildren()))
	for _, child := range f.GetChildren() {
		args = append(args, child.Clone())
	}
	return NewFunctionCall(f.funcName, args)
}

func (f *FunctionCall) GetDebugStr() string {
	ret := f.funcName + "("
	for idx, child := range f.GetChildren() {
		if idx > 0 {
			ret += ", "
		}
		ret += child.GetDebugStr()
	}
	return ret + ")"
}
