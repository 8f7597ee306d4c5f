package types

import (
	"encoding/json"
	"fmt"
)

/////////////////////////////////////////////////////////////////////////////
// TOKENIZER MODE
/////////////////////////////////////////////////////////////////////////////

type Mode int

const (
	// ModeCipher keeps letters, periods and dashes, preserves case and
	// splits on periods.
	ModeCipher Mode = iota
	// ModeWords lower-cases the text, keeps letters and whitespace and
	// splits on runs of whitespace.
	ModeWords
)

func (m Mode) String() string {
	switch m {
	case ModeCipher:
		return "cipher"
	case ModeWords:
		return "words"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "cipher":
		*m = ModeCipher
	case "words":
		*m = ModeWords
	default:
		return fmt.Errorf("unknown Mode: %s", s)
	}

	return nil
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN STATS
/////////////////////////////////////////////////////////////////////////////

type TokenStats struct {
	Mode          Mode `json:"mode"`
	TotalTokens   int  `json:"total_tokens"`
	EmptyTokens   int  `json:"empty_tokens"`
	KeptRunes     int  `json:"kept_runes"`
	RemovedRunes  int  `json:"removed_runes"`
	InputRuneSize int  `json:"input_rune_size"`
}

/////////////////////////////////////////////////////////////////////////////
// FREQUENCY
/////////////////////////////////////////////////////////////////////////////

// FrequencyEntry is one ranked line of a frequency report. Key is the
// character or word rendered as a string.
type FrequencyEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

/////////////////////////////////////////////////////////////////////////////
// SHIFT RESULT
/////////////////////////////////////////////////////////////////////////////

type ShiftResult struct {
	Shift   int `json:"shift"`
	Matches int `json:"matches"`
}

func (r ShiftResult) String() string {
	return fmt.Sprintf("Shift %d: %d matches found.", r.Shift, r.Matches)
}

/////////////////////////////////////////////////////////////////////////////
// REPORTS
/////////////////////////////////////////////////////////////////////////////

type SubstitutionReport struct {
	Stats          TokenStats       `json:"stats"`
	CharFrequency  []FrequencyEntry `json:"char_frequency"`
	WordFrequency  []FrequencyEntry `json:"word_frequency"`
	DecryptedWords []string         `json:"decrypted_words"`
	DecryptedText  string           `json:"decrypted_text"`
	Translated     []string         `json:"translated"`
	Annotated      []string         `json:"annotated"`
}

type ShiftReport struct {
	Results []ShiftResult `json:"results"`
	Best    ShiftResult   `json:"best"`
}

type Report struct {
	Source       string              `json:"source"`
	Substitution *SubstitutionReport `json:"substitution,omitempty"`
	Shift        *ShiftReport        `json:"shift,omitempty"`
}
