package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"codeberg.org/snonux/textlens/internal/processor"
)

type analyzeRequest struct {
	Text string `json:"text" form:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) registerAPIRoutes() {
	api := s.echo.Group("/api")
	api.POST("/analyze", s.handleAnalyze)
}

func (s *Server) handleAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), s.config.RequestTimeout)
	defer cancel()

	result, err := s.analyzer.Analyze(ctx, req.Text)
	if errors.Is(err, processor.ErrEmptyInput) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "please enter some text"})
	}
	if err != nil {
		slog.Error("Analysis failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "analysis failed"})
	}

	if err := c.JSON(http.StatusOK, result); err != nil {
		return fmt.Errorf("failed to write analysis response: %w", err)
	}
	return nil
}
