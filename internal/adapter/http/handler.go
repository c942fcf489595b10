package http

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"resume-hosting/internal/domain"
	"resume-hosting/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// envelope is the JSON shape of every non-binary response.
type envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
}

type Handler struct {
	store      usecase.ResumeStore
	aggregator *usecase.Aggregator
	exporter   *usecase.Exporter
}

func NewHandler(store usecase.ResumeStore, aggregator *usecase.Aggregator, exporter *usecase.Exporter) *Handler {
	return &Handler{store: store, aggregator: aggregator, exporter: exporter}
}

// Register mounts all routes under /api.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/health", h.Health)
	api.Get("/personal-info", h.GetPersonalInfo)
	api.Get("/experience", h.GetExperience)
	api.Get("/experience/:id", h.GetExperienceByID)
	api.Get("/education", h.GetEducation)
	api.Get("/skills", h.GetSkills)
	api.Get("/projects", h.GetProjects)
	api.Get("/certifications", h.GetCertifications)
	api.Get("/resume", h.GetResume)
	api.Get("/resume/pdf", h.DownloadPDF)
	api.Get("/resume/word", h.DownloadWord)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(envelope{
		Success:   true,
		Message:   "Resume API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) GetPersonalInfo(c *fiber.Ctx) error {
	info, err := h.store.GetPersonalInfo(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Personal information not found")
		}
		return err
	}
	return c.JSON(envelope{Success: true, Data: info})
}

func (h *Handler) GetExperience(c *fiber.Ctx) error {
	experience, err := h.aggregator.ExperienceWithDuties(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(envelope{Success: true, Data: emptyIfNil(experience)})
}

func (h *Handler) GetExperienceByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Experience not found")
	}
	exp, err := h.aggregator.ExperienceByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Experience not found")
		}
		return err
	}
	return c.JSON(envelope{Success: true, Data: exp})
}

func (h *Handler) GetEducation(c *fiber.Ctx) error {
	education, err := h.store.ListEducation(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(envelope{Success: true, Data: emptyIfNil(education)})
}

func (h *Handler) GetSkills(c *fiber.Ctx) error {
	skills, err := h.store.ListSkills(c.Context())
	if err != nil {
		return err
	}
	if skills == nil {
		skills = domain.SkillGroups{}
	}
	return c.JSON(envelope{Success: true, Data: skills})
}

func (h *Handler) GetProjects(c *fiber.Ctx) error {
	projects, err := h.store.ListProjects(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(envelope{Success: true, Data: emptyIfNil(projects)})
}

func (h *Handler) GetCertifications(c *fiber.Ctx) error {
	certifications, err := h.store.ListCertifications(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(envelope{Success: true, Data: emptyIfNil(certifications)})
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	doc, err := h.aggregator.Aggregate(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(envelope{Success: true, Data: doc})
}

func (h *Handler) DownloadPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.exporter.ExportPDF(c.Context())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func (h *Handler) DownloadWord(c *fiber.Ctx) error {
	out, filename, err := h.exporter.ExportWord(c.Context())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}

// NotFound answers unknown routes with the standard envelope.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(envelope{Success: false, Message: "Endpoint not found"})
}

// ErrorHandler is the app-level error boundary: every data-layer or rendering
// failure ends up here and is converted to the JSON envelope. For binary
// endpoints no body bytes have been flushed yet, so the client receives the
// envelope and zero document bytes. Diagnostic messages leak only outside
// production.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)

	message := "Internal server error"
	if os.Getenv("APP_ENV") != "production" {
		message = err.Error()
	}
	return c.Status(code).JSON(envelope{Success: false, Message: message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(envelope{Success: false, Message: message})
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
