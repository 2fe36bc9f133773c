// Package strategy defines the pluggable chunk-packing interface and the
// deterministic, first-match-wins selector that picks among registered
// implementations based on a document's content analysis.
//
// Concrete strategies (code-aware, structural, fallback) live in
// pkg/strategy/builtin; this package only holds the shared contract and
// selection logic, mirroring the teacher's separation between its parser
// interface and its builtin default parser.
package strategy
