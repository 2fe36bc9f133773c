// Package analysis implements the content analyzer (spec §4.2): a single
// pass over a parsed document that produces a ContentAnalysis describing
// fenced blocks, tables, headers, and lists, plus the derived ratios and
// complexity score the strategy selector consumes.
//
// Detection is driven by a goldmark AST walk (github.com/yuin/goldmark),
// the same parser the teacher repository uses to turn markdown into a
// Section tree (pkg/parser/builtin/default.go) — generalized here into a
// single walk that classifies blocks instead of folding them into a tree.
// Using goldmark's own block parser also resolves, for free, the spec's
// open question on Setext-header-inside-fence precedence: goldmark never
// opens a heading parse inside an unterminated fence.
package analysis
