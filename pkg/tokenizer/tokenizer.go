package tokenizer

// Tokenizer counts tokens in a string. It backs the optional token-count
// enrichment metadata and the tiktoken-based adaptive size model.
type Tokenizer interface {
	// Count returns the number of tokens in the given string.
	// Returns an error if token counting fails.
	Count(s string) (int, error)
}

// TokenCounter is a function that counts tokens in a given text string.
// It returns the token count and any error encountered during counting.
type TokenCounter func(text string) (int, error)

// tokenizer is the internal implementation of the Tokenizer interface.
type tokenizer struct {
	tokenCounter TokenCounter
}

// Count implements Tokenizer.Count by delegating to the configured TokenCounter.
func (t *tokenizer) Count(s string) (int, error) {
	return t.tokenCounter(s)
}

// MakeTokenizer creates a new Tokenizer using the provided TokenCounter function.
//
// Example:
//
//	counter := func(text string) (int, error) {
//	    return len(strings.Fields(text)), nil // Simple word count
//	}
//	tok := tokenizer.MakeTokenizer(counter)
func MakeTokenizer(counter TokenCounter) Tokenizer {
	return &tokenizer{tokenCounter: counter}
}
