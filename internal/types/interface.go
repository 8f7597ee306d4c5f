package types

type Tokenizer interface {
	Tokenize() []string
}

// Tokenize with statistics
type TokenizerWithStats interface {
	Tokenizer
	GetStats() TokenStats
}

