package plans

import (
	"github.com/ryogrid/KujiraDB/lib/types"
)

// RangeInfoBound is one side of a one-dimensional range condition. a nil
// *RangeInfoBound means the side is unbounded.
type RangeInfoBound struct {
	Value_     types.Value
	Inclusive_ bool
}

func NewRangeInfoBound(value types.Value, inclusive bool) *RangeInfoBound {
	return &RangeInfoBound{value, inclusive}
}

// RangeInfo is the accumulated (low, high) restriction on one attribute of
// one variable.
type RangeInfo struct {
	VarName_ string
	Attr_    string
	Low_     *RangeInfoBound
	High_    *RangeInfoBound
}

func NewRangeInfo(varName string, attr string, low *RangeInfoBound, high *RangeInfoBound) *RangeInfo {
	return &RangeInfo{varName, attr, low, high}
}

// Is1ValueRangeInfo reports whether the range pins the attribute to a
// single value, the form hash indexes can serve.
func (r *RangeInfo) Is1ValueRangeInfo() bool {
	return r.Low_ != nil && r.High_ != nil &&
		r.Low_.Inclusive_ && r.High_.Inclusive_ &&
		r.Low_.Value_.CompareEquals(r.High_.Value_)
}

func (r *RangeInfo) Clone() *RangeInfo {
	clone := *r
	return &clone
}

func (r *RangeInfo) GetDebugStr() string {
	ret := r.VarName_ + "." + r.Attr_ + " in "
	if r.Low_ != nil {
		if r.Low_.Inclusive_ {
			ret += "[" + r.Low_.Value_.ToString()
		} else {
			ret += "(" + r.Low_.Value_.ToString()
		}
	} else {
		ret += "(-inf"
	}
	ret += ", "
	if r.High_ != nil {
		if r.High_.Inclusive_ {
			ret += r.High_.Value_.ToString() + "]"
		} else {
			ret += r.High_.Value_.ToString() + ")"
		}
	} else {
		ret += "+inf)"
	}
	return ret
}

// RangesInfo accumulates range conditions per variable name and attribute
// while a rule walks a filter condition.
type RangesInfo struct {
	ranges map[string]map[string]*RangeInfo
}

func NewRangesInfo() *RangesInfo {
	return &RangesInfo{make(map[string]map[string]*RangeInfo)}
}

// Insert merges a new condition into the accumulator. each side of an
// incoming range overwrites the stored side when present and leaves it
// untouched when absent, so "a > 1 AND a < 10" accumulates into one
// (1, 10) range while a repeated bound on the same side replaces the
// earlier one.
func (ri *RangesInfo) Insert(info *RangeInfo) {
	attrMap, ok := ri.ranges[info.VarName_]
	if !ok {
		ri.ranges[info.VarName_] = map[string]*RangeInfo{info.Attr_: info.Clone()}
		return
	}
	stored, ok := attrMap[info.Attr_]
	if !ok {
		attrMap[info.Attr_] = info.Clone()
		return
	}
	if info.Low_ != nil {
		stored.Low_ = info.Low_
	}
	if info.High_ != nil {
		stored.High_ = info.High_
	}
}

// Find returns the per-attribute ranges accumulated for a variable, nil
// when the variable is unconstrained.
func (ri *RangesInfo) Find(varName string) map[string]*RangeInfo {
	return ri.ranges[varName]
}
