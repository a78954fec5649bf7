package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"textprocessor/internal/model"
	"textprocessor/pkg/llm"

	"github.com/gin-gonic/gin"
)

type HistoryStore interface {
	Append(result model.ProcessingResult)
	List() []model.ProcessingResult
}

type ProcessHandler struct {
	processor llm.TextProcessor
	history   HistoryStore
}

func NewProcessHandler(processor llm.TextProcessor, history HistoryStore) *ProcessHandler {
	return &ProcessHandler{processor: processor, history: history}
}

func (h *ProcessHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Text Processing API"})
}

// ProcessText runs the three provider calls in sequence and records the
// assembled result. A failure at any stage aborts the rest; nothing is
// appended to history on failure.
func (h *ProcessHandler) ProcessText(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid process request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text cannot be empty"})
		return
	}

	ctx := c.Request.Context()

	summary, err := h.processor.Summarize(ctx, req.Text)
	if err != nil {
		h.providerError(c, "summarize", err)
		return
	}

	keywords, err := h.processor.ExtractKeywords(ctx, req.Text)
	if err != nil {
		h.providerError(c, "extract keywords", err)
		return
	}

	sentiment, err := h.processor.AnalyzeSentiment(ctx, req.Text)
	if err != nil {
		h.providerError(c, "analyze sentiment", err)
		return
	}

	result := model.ProcessingResult{
		OriginalText: req.Text,
		Summary:      summary,
		Keywords:     keywords,
		Sentiment:    sentiment,
	}

	h.history.Append(result)

	c.JSON(http.StatusOK, toProcessResponse(result))
}

func (h *ProcessHandler) GetHistory(c *gin.Context) {
	results := h.history.List()

	res := make([]ProcessResponse, 0, len(results))
	for _, r := range results {
		res = append(res, toProcessResponse(r))
	}

	c.JSON(http.StatusOK, res)
}

func (h *ProcessHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *ProcessHandler) providerError(c *gin.Context, stage string, err error) {
	slog.Error("provider call failed", "stage", stage, "error", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "Language model request failed"})
}
