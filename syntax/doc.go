// Package syntax is the tree representation of parsed folio source.
//
// A [SyntaxModel] is an ordered sequence of spanned [Node] values in
// document order. Most node kinds are plain data; the [ModelNode] kind is
// the tree's single extension point and holds an erased [Model] value,
// typically the result of a function invocation recognized by the parser.
//
// [Erase] and [As] make erased values structurally comparable, deep
// cloneable and downcastable without the tree knowing their concrete
// types. Any type satisfying [Value] gets this for free.
package syntax
