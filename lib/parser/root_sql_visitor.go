package parser

import (
	"github.com/pingcap/parser/ast"
)

type RootSQLVisitor struct {
	QueryInfo_ *QueryInfo
}

func NewRootSQLVisitor() *RootSQLVisitor {
	ret := new(RootSQLVisitor)
	qinfo := new(QueryInfo)
	qinfo.QueryType_ = new(QueryType)
	*qinfo.QueryType_ = NOT_SUPPORTED
	qinfo.SelectFields_ = make([]*string, 0)
	qinfo.WhereExpression_ = new(BinaryOpExpression)
	qinfo.WhereExpression_.LogicalOperationType_ = -1
	qinfo.WhereExpression_.ComparisonOperationType_ = -1
	ret.QueryInfo_ = qinfo

	return ret
}

func (v *RootSQLVisitor) Enter(in ast.Node) (ast.Node, bool) {
	switch node := in.(type) {
	case *ast.SelectStmt:
		*v.QueryInfo_.QueryType_ = SELECT
	case *ast.TableName:
		if v.QueryInfo_.FromCollection_ == nil {
			tbname := node.Name.String()
			v.QueryInfo_.FromCollection_ = &tbname
		}
	case *ast.SelectField:
		if node.WildCard != nil {
			wildcard := "*"
			v.QueryInfo_.SelectFields_ = append(v.QueryInfo_.SelectFields_, &wildcard)
		} else if col, ok := node.Expr.(*ast.ColumnNameExpr); ok {
			cname := col.Name.String()
			v.QueryInfo_.SelectFields_ = append(v.QueryInfo_.SelectFields_, &cname)
		}
		return in, true
	case *ast.BinaryOperationExpr:
		// the WHERE condition tree
		bov := &BinaryOpVisitor{v.QueryInfo_, v.QueryInfo_.WhereExpression_}
		node.Accept(bov)
		return in, true
	default:
	}

	return in, false
}

func (v *RootSQLVisitor) Leave(in ast.Node) (ast.Node, bool) {
	return in, true
}
