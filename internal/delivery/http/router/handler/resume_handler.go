package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"linkup/internal/delivery/http/middleware"
	"linkup/internal/delivery/http/response"
	"linkup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ResumeHandler holds dependencies for resume parsing handlers.
type ResumeHandler struct {
	uc     usecase.ResumeUsecase
	logger *slog.Logger
}

// NewResumeHandler is the constructor for ResumeHandler, injected by Fx.
func NewResumeHandler(uc usecase.ResumeUsecase, logger *slog.Logger) *ResumeHandler {
	return &ResumeHandler{uc: uc, logger: logger}
}

// Parse accepts a multipart resume upload and returns the parsing provider's
// response together with the caller's remaining credit balance.
func (h *ResumeHandler) Parse(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Invalid token")
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "A resume file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded resume")
	}
	defer file.Close()

	document, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded resume")
	}

	output, err := h.uc.ParseResume(c.Request().Context(), &usecase.ParseResumeInput{
		UserID:   userID,
		FileName: fileHeader.Filename,
		Document: document,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"parsed":           json.RawMessage(output.Parsed),
		"contentType":      output.ContentType,
		"remainingCredits": output.RemainingCredits,
	})
}
