package parser

import (
	"errors"

	"github.com/pingcap/parser"
	"github.com/pingcap/parser/ast"
	_ "github.com/pingcap/tidb/types/parser_driver"
)

type QueryInfo struct {
	QueryType_       *QueryType
	SelectFields_    []*string           // SELECT
	FromCollection_  *string             // SELECT
	WhereExpression_ *BinaryOpExpression // SELECT
}

func extractInfoFromAST(rootNode *ast.StmtNode) *QueryInfo {
	v := NewRootSQLVisitor()
	(*rootNode).Accept(v)
	return v.QueryInfo_
}

func parse(sqlStr *string) (*ast.StmtNode, error) {
	p := parser.New()

	stmtNodes, _, err := p.Parse(*sqlStr, "", "")
	if err != nil {
		return nil, err
	}
	// comment-only input parses to zero statements without an error
	if len(stmtNodes) == 0 {
		return nil, errors.New("query contains no statement")
	}

	return &stmtNodes[0], nil
}

func ProcessSQLStr(sqlStr *string) (error, *QueryInfo) {
	astNode, err := parse(sqlStr)
	if err != nil {
		return err, nil
	}

	qinfo := extractInfoFromAST(astNode)
	if *qinfo.QueryType_ != SELECT {
		return errors.New("only SELECT statements are supported"), nil
	}
	if qinfo.FromCollection_ == nil {
		return errors.New("SELECT statement needs a FROM collection"), nil
	}
	return nil, qinfo
}
