package parser

import (
	ptypes "github.com/pingcap/tidb/types"
	driver "github.com/pingcap/tidb/types/parser_driver"
	"github.com/ryogrid/KujiraDB/lib/types"
)

type QueryType int32

const (
	SELECT QueryType = iota
	NOT_SUPPORTED
)

func ValueExprToValue(expr *driver.ValueExpr) *types.Value {
	switch expr.Datum.Kind() {
	case ptypes.KindInt64:
		ret := types.NewInteger(expr.Datum.GetInt64())
		return &ret
	case ptypes.KindUint64:
		ret := types.NewInteger(int64(expr.Datum.GetUint64()))
		return &ret
	case ptypes.KindFloat32:
		ret := types.NewFloat(float64(expr.Datum.GetFloat32()))
		return &ret
	case ptypes.KindFloat64:
		ret := types.NewFloat(expr.Datum.GetFloat64())
		return &ret
	case ptypes.KindMysqlDecimal:
		fval, err := expr.Datum.GetMysqlDecimal().ToFloat64()
		if err != nil {
			ret := types.NewNull()
			return &ret
		}
		ret := types.NewFloat(fval)
		return &ret
	case ptypes.KindString:
		ret := types.NewVarchar(expr.Datum.GetString())
		return &ret
	case ptypes.KindNull:
		ret := types.NewNull()
		return &ret
	default:
		ret := types.NewVarchar(expr.String())
		return &ret
	}
}
