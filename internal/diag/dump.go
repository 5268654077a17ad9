package diag

import (
	"github.com/yassinebenaid/godump"

	"github.com/baselang/semantic/internal/ast"
	"github.com/baselang/semantic/internal/symtab"
)

// DumpAST writes a human-facing dump of prog to stdout, field by field,
// for debugging a fixture before it reaches the two analysis passes.
//
// This is deliberately not the debugging format inspected by tests:
// SymTable.DebugString's "++++ SYMBOL TABLE" layout is bit-exact and
// covered directly, while DumpAST's output is free to change shape
// across godump versions without breaking anything.
func DumpAST(prog *ast.Program) {
	godump.Dump(prog)
}

// DumpTable writes a human-facing dump of a symbol table's innermost
// scope to stdout, keyed by name (for a table returned by Resolve, that
// is the program scope). Unlike SymTable.DebugString, this walks exported
// accessors reflectively rather than producing the tested scope-by-scope
// text format. Neither the CLI nor any test calls it.
func DumpTable(table *symtab.SymTable) {
	godump.Dump(table.AllLocal())
}
