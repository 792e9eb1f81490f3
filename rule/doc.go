// Package rule implements the adjacency rule grammar: a small expression
// language describing when two tile edges may sit next to each other.
//
// Grammar (descending precedence):
//
//	primary  := IDENT | '(' expr ')' | '[' expr '>' expr ']' | '^' primary
//	compound := primary ('+' primary)*
//	expr     := compound ('|' compound)*
//
// Tokens are identifiers matching [A-Za-z0-9_]+ and the literals
// ^ [ ] > + | ( ). Whitespace is insignificant.
//
// Parse builds a Rule tree; Match decides whether two rule trees are
// compatible across a shared edge (the relation is commutative except
// for Directional, which is also never reflexively self-matching).
// Print renders a Rule back to its canonical source form, so that
// Parse(Print(Parse(s))) == Parse(s) for any valid s.
package rule
