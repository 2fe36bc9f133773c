package textutil

import "regexp"

// paragraphBoundary matches a run of one or more blank lines.
var paragraphBoundary = regexp.MustCompile(`\n[ \t]*\n+`)

// sentenceBoundary matches the spec §4.5 sentence-split pattern:
// a sentence-ending punctuation mark followed by closing quotes/brackets
// and whitespace.
var sentenceBoundary = regexp.MustCompile(`[.!?][\s)\]"']+`)

// SplitParagraphs splits text on blank-line paragraph boundaries,
// preserving the raw text of each paragraph (including any trailing
// newline from the original, stripped).
func SplitParagraphs(text string) []string {
	if text == "" {
		return nil
	}
	parts := paragraphBoundary.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SplitSentences splits text at sentence boundaries (spec §4.5's
// `[.!?][\s)\]"']+` pattern), keeping the terminating punctuation attached
// to the preceding sentence.
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}
	locs := sentenceBoundary.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}

	var out []string
	start := 0
	for _, loc := range locs {
		out = append(out, text[start:loc[1]])
		start = loc[1]
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

// SplitWords splits text on runs of whitespace, a last-resort split for a
// single sentence still exceeding the size bound.
func SplitWords(text string) []string {
	var out []string
	start := -1
	for i, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if start >= 0 {
				out = append(out, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, text[start:])
	}
	return out
}

// NearestSentenceSplit finds the sentence-boundary offset in text closest to
// the preferred target length, returning false if text has no sentence
// boundary at all.
func NearestSentenceSplit(text string, target int) (offset int, ok bool) {
	locs := sentenceBoundary.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return 0, false
	}
	best := locs[0][1]
	bestDist := abs(best - target)
	for _, loc := range locs[1:] {
		d := abs(loc[1] - target)
		if d < bestDist {
			best = loc[1]
			bestDist = d
		}
	}
	return best, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
