package plans

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ryogrid/KujiraDB/lib/common"
	"github.com/ryogrid/KujiraDB/lib/execution/expression"
	"github.com/ryogrid/KujiraDB/lib/types"
)

/**
 * ExecutionPlan owns every node of one plan DAG.
 *
 * Ownership is centralized in the id-keyed node container so a failed
 * Clone can discard its half-built plan in one step. The plan also keeps
 * the variable-id to setter-node index that rules use for O(1) setter
 * lookup.
 */
type ExecutionPlan struct {
	nodes     map[types.NodeID]ExecutionNode
	root      ExecutionNode
	nextID    types.NodeID
	nextVarID types.VariableID
	varSetBy  map[types.VariableID]ExecutionNode
}

func NewExecutionPlan() *ExecutionPlan {
	return &ExecutionPlan{
		nodes:    make(map[types.NodeID]ExecutionNode),
		varSetBy: make(map[types.VariableID]ExecutionNode),
	}
}

func (p *ExecutionPlan) NextID() types.NodeID {
	id := p.nextID
	p.nextID++
	return id
}

// NewVariable mints a plan-unique variable.
func (p *ExecutionPlan) NewVariable(name string) *expression.Variable {
	id := p.nextVarID
	p.nextVarID++
	return expression.NewVariable(id, name)
}

// RegisterNode adds a node to the plan and indexes the variables it sets.
func (p *ExecutionPlan) RegisterNode(node ExecutionNode) error {
	if _, ok := p.nodes[node.GetID()]; ok {
		return fmt.Errorf("node id %d is already registered", node.GetID())
	}
	for _, v := range node.GetVariablesSetHere() {
		if _, ok := p.varSetBy[v.Id_]; ok {
			return fmt.Errorf("variable %s is already set by another node", v.Name_)
		}
	}
	for _, v := range node.GetVariablesSetHere() {
		p.varSetBy[v.Id_] = node
	}
	p.nodes[node.GetID()] = node
	return nil
}

func (p *ExecutionPlan) SetRoot(node ExecutionNode) {
	common.KJ_Assert(p.nodes[node.GetID()] == node, "root node is not registered in the plan!")
	p.root = node
}

func (p *ExecutionPlan) GetRoot() ExecutionNode {
	return p.root
}

func (p *ExecutionPlan) GetNodeByID(id types.NodeID) ExecutionNode {
	return p.nodes[id]
}

// GetVarSetBy returns the node that introduces the variable, nil when no
// registered node sets it.
func (p *ExecutionPlan) GetVarSetBy(id types.VariableID) ExecutionNode {
	return p.varSetBy[id]
}

func (p *ExecutionPlan) CountNodes() int {
	return len(p.nodes)
}

// FindNodesOfType collects nodes of one kind in preorder from the root,
// following dependency edges in order. with recursive false the walk does
// not descend past a match, so only the topmost matches are returned.
func (p *ExecutionPlan) FindNodesOfType(planType PlanType, recursive bool) []ExecutionNode {
	result := make([]ExecutionNode, 0)
	visited := mapset.NewSet[types.NodeID]()
	p.findNodesOfType(p.root, planType, recursive, visited, &result)
	return result
}

func (p *ExecutionPlan) findNodesOfType(node ExecutionNode, planType PlanType, recursive bool, visited mapset.Set[types.NodeID], out *[]ExecutionNode) {
	if node == nil || !visited.Add(node.GetID()) {
		return
	}
	matched := node.GetType() == planType
	if matched {
		*out = append(*out, node)
		if !recursive {
			return
		}
	}
	for _, dep := range node.GetDependencies() {
		p.findNodesOfType(dep, planType, recursive, visited, out)
	}
}

// UnlinkNodes removes a batch of nodes, rewiring each node's parents onto
// its single dependency. unlink targets must have exactly one dependency.
func (p *ExecutionPlan) UnlinkNodes(toUnlink mapset.Set[types.NodeID]) {
	toUnlink.Each(func(id types.NodeID) bool {
		node, ok := p.nodes[id]
		common.KJ_Assert(ok, "unlink target is not registered in the plan!")
		p.unlinkNode(node)
		return false
	})
}

func (p *ExecutionPlan) unlinkNode(node ExecutionNode) {
	na := node.abstract()
	common.KJ_Assert(len(na.dependencies) == 1, "unlink target must have exactly one dependency!")
	common.KJ_Assert(p.root != node, "the root node can not be unlinked!")
	dep := na.dependencies[0]
	da := dep.abstract()
	removeFromNodeList(&da.parents, node)
	for _, parent := range na.parents {
		pa := parent.abstract()
		replaceInNodeList(&pa.dependencies, node, dep)
		da.parents = append(da.parents, parent)
	}
	na.dependencies = nil
	na.parents = nil
	for _, v := range node.GetVariablesSetHere() {
		delete(p.varSetBy, v.Id_)
	}
	delete(p.nodes, node.GetID())
}

// ReplaceNode splices newNode into oldNode's position. newNode takes over
// oldNode's dependencies and parents and must not be registered yet.
func (p *ExecutionPlan) ReplaceNode(oldNode ExecutionNode, newNode ExecutionNode) error {
	if _, ok := p.nodes[oldNode.GetID()]; !ok {
		return errors.New("replace target is not registered in the plan")
	}
	delete(p.nodes, oldNode.GetID())
	for _, v := range oldNode.GetVariablesSetHere() {
		delete(p.varSetBy, v.Id_)
	}
	if err := p.RegisterNode(newNode); err != nil {
		return err
	}
	oa := oldNode.abstract()
	na := newNode.abstract()
	na.dependencies = oa.dependencies
	na.parents = oa.parents
	for _, dep := range na.dependencies {
		replaceInNodeList(&dep.abstract().parents, oldNode, newNode)
	}
	for _, parent := range na.parents {
		replaceInNodeList(&parent.abstract().dependencies, oldNode, newNode)
	}
	oa.dependencies = nil
	oa.parents = nil
	if p.root == oldNode {
		p.root = newNode
	}
	return nil
}

// Clone deep copies the plan under fresh node ids. expressions are copied,
// variables shared, so GetVarSetBy on the clone resolves the cloned
// counterpart of any setter. nothing of a failed clone escapes.
func (p *ExecutionPlan) Clone() (error, *ExecutionPlan) {
	newPlan := NewExecutionPlan()
	newPlan.nextVarID = p.nextVarID
	mapping := make(map[types.NodeID]ExecutionNode)
	err, newRoot := p.cloneNode(p.root, newPlan, mapping)
	if err != nil {
		return err, nil
	}
	newPlan.root = newRoot
	return nil, newPlan
}

func (p *ExecutionPlan) cloneNode(node ExecutionNode, newPlan *ExecutionPlan, mapping map[types.NodeID]ExecutionNode) (error, ExecutionNode) {
	if cloned, ok := mapping[node.GetID()]; ok {
		return nil, cloned
	}
	cloned := node.cloneShallow(newPlan.NextID())
	mapping[node.GetID()] = cloned
	if err := newPlan.RegisterNode(cloned); err != nil {
		return err, nil
	}
	for _, dep := range node.GetDependencies() {
		err, clonedDep := p.cloneNode(dep, newPlan, mapping)
		if err != nil {
			return err, nil
		}
		AddDependency(cloned, clonedDep)
	}
	return nil, cloned
}

func (p *ExecutionPlan) GetDebugStr() string {
	ret := ""
	node := p.root
	indent := ""
	for node != nil {
		ret += indent + node.GetDebugStr() + "\n"
		indent += "  "
		deps := node.GetDependencies()
		if len(deps) == 0 {
			break
		}
		node = deps[0]
	}
	return ret
}
