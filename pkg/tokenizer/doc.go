// Package tokenizer provides token counting for chunk content.
//
// It backs the optional token_count enrichment metadata and the tiktoken-based
// adaptive size model (see pkg/enrich); by default chunks are sized and scored
// on characters, never on tokens.
//
// # Tokenizer Interface
//
//	type Tokenizer interface {
//	    Count(text string) (int, error)
//	}
//
// # Built-in Tokenizers
//
// The builtin subpackage provides three implementations:
//
//  1. TiktokenTokenizer: uses the tiktoken-go library (OpenAI's tokenizer).
//  2. WordCountTokenizer: approximates tokens by counting words.
//  3. CharacterCountTokenizer: approximates tokens by counting characters.
//
// # Usage Example
//
//	tok, err := builtin.NewTiktokenTokenizer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	count, err := tok.Count("Hello, world!")
package tokenizer
