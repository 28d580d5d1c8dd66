package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumatch/ats-scorer/internal/middleware"
	"github.com/resumatch/ats-scorer/internal/models"
	"github.com/resumatch/ats-scorer/internal/repositories"
	"github.com/resumatch/ats-scorer/internal/services"
)

type AnalyzeHandler struct {
	analysisRepo   repositories.AnalysisRepository
	storageService services.StorageService
	analyzer       services.AnalyzerService
	maxFileSize    int64
}

func NewAnalyzeHandler(
	analysisRepo repositories.AnalysisRepository,
	storageService services.StorageService,
	analyzer services.AnalyzerService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisRepo:   analysisRepo,
		storageService: storageService,
		analyzer:       analyzer,
		maxFileSize:    maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze. It expects a multipart form with
// "jobFile" and "resumeFile", stores both, runs the scoring pipeline
// synchronously and persists the result. On a pipeline failure nothing
// is persisted.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	userID, err := uuid.Parse(fmt.Sprint(c.Locals(middleware.UserIDKey)))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
		})
	}

	jobFile, err := c.FormFile("jobFile")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Both jobFile and resumeFile are required",
		})
	}

	resumeFile, err := c.FormFile("resumeFile")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Both jobFile and resumeFile are required",
		})
	}

	if !services.AllowedExtension(jobFile.Filename) || !services.AllowedExtension(resumeFile.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported file type. Allowed: .pdf, .docx",
		})
	}

	if jobFile.Size > h.maxFileSize || resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	// Save files
	jobFilename, jobPath, err := h.storageService.SaveFile(jobFile, services.FileKindJD)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save job file: %v", err),
		})
	}

	_, resumePath, err := h.storageService.SaveFile(resumeFile, services.FileKindResume)
	if err != nil {
		h.storageService.DeleteFile(services.FileKindJD, jobFilename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	// Run the scoring pipeline
	result, err := h.analyzer.Analyze(resumePath, jobPath)
	if err != nil {
		log.Printf("❌ Analysis failed for user %s: %v\n", userID, err)
		if errors.Is(err, services.ErrProcessing) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Processing failed",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Analysis failed",
		})
	}

	// Persist analysis
	analysis := &models.Analysis{
		ID:             uuid.New(),
		UserID:         userID,
		JobFilePath:    jobPath,
		ResumeFilePath: resumePath,
		Overall:        result.Overall,
		Keyword:        result.Keyword,
		Skill:          result.Skill,
		Readability:    result.Readability,
		Format:         result.Format,
		CreatedAt:      time.Now(),
	}

	if err := h.analysisRepo.Create(analysis); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save analysis record",
		})
	}

	return c.JSON(result)
}
