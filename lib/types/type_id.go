package types

type TypeID int

const (
	Invalid TypeID = iota
	Boolean
	Integer
	Float
	Varchar
	Null
)

// VariableID identifies a query variable. exactly one plan node sets
// (introduces) a variable with a given id
type VariableID uint32

// NodeID identifies an execution plan node. ids are unique within one
// plan and monotonically increasing
type NodeID uint32
