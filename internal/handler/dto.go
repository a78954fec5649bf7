package handler

import "textprocessor/internal/model"

type ProcessRequest struct {
	Text string `json:"text"`
}

type ProcessResponse struct {
	OriginalText string   `json:"original_text"`
	Summary      string   `json:"summary"`
	Keywords     []string `json:"keywords"`
	Sentiment    string   `json:"sentiment"`
}

func toProcessResponse(r model.ProcessingResult) ProcessResponse {
	keywords := r.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return ProcessResponse{
		OriginalText: r.OriginalText,
		Summary:      r.Summary,
		Keywords:     keywords,
		Sentiment:    r.Sentiment,
	}
}
