package matching

import (
	"strconv"

	"github.com/kbecker21/tt-csv-matcher/core/logger"
	"github.com/kbecker21/tt-csv-matcher/feature/roster"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the matching feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the matching routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
	app.Post("/match", h.HandleMatch)
}

// HandleHealth reports service readiness and roster size.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "ok",
		"reference_size": h.service.ReferenceSize(),
	})
}

// HandleMatch matches an uploaded event roster against the in-memory
// reference set. The event file is posted as multipart field "event";
// an optional "fuzzy_threshold" form value overrides the configured
// threshold for this request.
func (h *Handler) HandleMatch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fileHeader, err := c.FormFile("event")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "multipart field 'event' is required"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		l.Error("Failed to open upload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot open uploaded file"})
	}
	defer f.Close()

	events, err := roster.ReadPlayersFrom(f, fileHeader.Filename, l)
	if err != nil {
		l.Warn("Rejected event upload", zap.String("file", fileHeader.Filename), zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var results []Result
	if raw := c.FormValue("fuzzy_threshold"); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fuzzy_threshold must be a number"})
		}
		results, err = h.service.MatchWithThreshold(events, threshold)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	} else {
		results = h.service.Match(events)
	}

	l.Info("Match request served",
		zap.String("file", fileHeader.Filename),
		zap.Int("events", len(events)),
	)

	return c.JSON(fiber.Map{
		"event_name": fileHeader.Filename,
		"stats":      ComputeStats(results),
		"results":    results,
	})
}
