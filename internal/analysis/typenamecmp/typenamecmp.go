// Package typenamecmp defines an analyzer that reports behaviour chosen by
// comparing a value's type name with a string.
//
// Training variants must differ by their methods; a check such as
//
//	if reflect.TypeOf(t).Name() == "Swimming" { ... }
//
// silently breaks when a type is renamed or wrapped.
package typenamecmp

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"
)

const Doc = `report comparisons of type names with strings

Comparing reflect.Type names, or fmt.Sprintf("%T", v), with a string
literal is a type switch in disguise. Declare a method on the type instead.`

var Analyzer = &analysis.Analyzer{
	Name:     "typenamecmp",
	Doc:      Doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.BinaryExpr)(nil),
		(*ast.SwitchStmt)(nil),
	}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.BinaryExpr:
			if n.Op != token.EQL && n.Op != token.NEQ {
				return
			}
			if isTypeName(pass, n.X) || isTypeName(pass, n.Y) {
				pass.Reportf(n.OpPos, "type name compared with %s; use a method instead", operand(pass, n))
			}
		case *ast.SwitchStmt:
			if n.Tag != nil && isTypeName(pass, n.Tag) {
				pass.Reportf(n.Tag.Pos(), "switch on type name; use a method or a type switch instead")
			}
		}
	})
	return nil, nil
}

// isTypeName reports whether e is reflect.Type.Name(), reflect.Type.String()
// or fmt.Sprintf("%T", ...).
func isTypeName(pass *analysis.Pass, e ast.Expr) bool {
	call, ok := astutil.Unparen(e).(*ast.CallExpr)
	if !ok {
		return false
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	if sel.Sel.Name == "Name" || sel.Sel.Name == "String" {
		if isReflectType(pass.TypesInfo.TypeOf(sel.X)) {
			return true
		}
	}

	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "fmt" || fn.Name() != "Sprintf" || len(call.Args) == 0 {
		return false
	}
	tv, ok := pass.TypesInfo.Types[call.Args[0]]
	return ok && tv.Value != nil && tv.Value.Kind() == constant.String &&
		constant.StringVal(tv.Value) == "%T"
}

func isReflectType(t types.Type) bool {
	named, ok := t.(*types.Named)
	return ok && named.Obj().Pkg() != nil &&
		named.Obj().Pkg().Path() == "reflect" && named.Obj().Name() == "Type"
}

func operand(pass *analysis.Pass, n *ast.BinaryExpr) string {
	other := n.Y
	if isTypeName(pass, n.Y) {
		other = n.X
	}
	if tv, ok := pass.TypesInfo.Types[other]; ok && tv.Value != nil && tv.Value.Kind() == constant.String {
		return strconv.Quote(constant.StringVal(tv.Value))
	}
	return "a string"
}
