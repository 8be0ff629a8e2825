// Package funcs contains the function models the parser embeds into
// syntax trees, plus the scope interface it resolves their names
// against. Each model satisfies [syntax.Value] and is stored erased, so
// new functions need no changes to the tree.
package funcs
