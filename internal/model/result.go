package model

// ProcessingResult is the combined output record for one processed text.
// OriginalText echoes the submitted text exactly, without trimming.
type ProcessingResult struct {
	OriginalText string
	Summary      string
	Keywords     []string
	Sentiment    string
}
