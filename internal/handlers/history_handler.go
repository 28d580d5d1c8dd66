package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumatch/ats-scorer/internal/middleware"
	"github.com/resumatch/ats-scorer/internal/models"
	"github.com/resumatch/ats-scorer/internal/repositories"
)

type HistoryHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewHistoryHandler(analysisRepo repositories.AnalysisRepository) *HistoryHandler {
	return &HistoryHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleHistory handles GET /history, returning the authenticated user's
// analyses newest-first.
func (h *HistoryHandler) HandleHistory(c *fiber.Ctx) error {
	userID, err := uuid.Parse(fmt.Sprint(c.Locals(middleware.UserIDKey)))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
		})
	}

	analyses, err := h.analysisRepo.FindByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch history",
		})
	}

	entries := make([]models.HistoryEntry, 0, len(analyses))
	for _, a := range analyses {
		entries = append(entries, models.HistoryEntry{
			ID:             a.ID.String(),
			JobFilePath:    a.JobFilePath,
			ResumeFilePath: a.ResumeFilePath,
			Scores: models.ScoreResult{
				Overall:     a.Overall,
				Keyword:     a.Keyword,
				Skill:       a.Skill,
				Readability: a.Readability,
				Format:      a.Format,
			},
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(entries)
}
