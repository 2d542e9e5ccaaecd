package expression

import "github.com/ryogrid/KujiraDB/lib/types"

// Variable is a named value slot introduced by exactly one plan node.
// Variables are compared and looked up by Id_; Name_ exists for range
// extraction and debug output. Plan clones share Variable instances.
type Variable struct {
	Id_   types.VariableID
	Name_ string
}

func NewVariable(id types.VariableID, name string) *Variable {
	return &Variable{id, name}
}
