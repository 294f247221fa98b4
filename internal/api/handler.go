// Package api exposes the converter over HTTP for callers that cannot
// shell out to the CLI.
package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Torinad2/EZ-Pass/internal/config"
	"github.com/Torinad2/EZ-Pass/internal/extractor"
	"github.com/Torinad2/EZ-Pass/internal/models"
	"github.com/Torinad2/EZ-Pass/internal/parser"
)

const apiVersion = "1.0.0"

// ConvertResponse is the JSON body returned by POST /api/convert.
type ConvertResponse struct {
	Success  bool                       `json:"success"`
	Error    string                     `json:"error,omitempty"`
	Count    int                        `json:"count"`
	Records  []models.TransactionRecord `json:"records"`
	Metadata *models.StatementMetadata  `json:"metadata,omitempty"`
	Version  string                     `json:"version,omitempty"`
}

// Handler holds the HTTP handlers and their configuration.
type Handler struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewApp builds the fiber application with all routes registered.
func NewApp(cfg *config.Config, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:             32 << 20,
		DisableStartupMessage: true,
	})

	h := &Handler{cfg: cfg, log: log}
	app.Get("/api/health", h.Health)
	app.Post("/api/convert", h.Convert)
	return app
}

// Health reports liveness.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": apiVersion,
	})
}

// Convert accepts one statement PDF as multipart field "file" and
// returns the parsed records as JSON.
func (h *Handler) Convert(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, "no file uploaded; use form field 'file'")
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return h.fail(c, fiber.StatusBadRequest, "only PDF files are supported")
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return h.fail(c, fiber.StatusInternalServerError, "could not buffer upload")
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(fh, tmpPath); err != nil {
		return h.fail(c, fiber.StatusInternalServerError, "could not buffer upload")
	}

	pages, err := extractor.ExtractText(tmpPath)
	if err != nil {
		return h.fail(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("extraction failed: %v", err))
	}

	sp := &parser.StatementParser{
		StartAnchor: h.cfg.Selector.StartAnchor,
		EndAnchor:   h.cfg.Selector.EndAnchor,
	}
	records := sp.Parse(pages)

	resp := ConvertResponse{
		Success: true,
		Count:   len(records),
		Records: records,
		Version: apiVersion,
	}
	if h.cfg.Metadata.Enabled {
		md := sp.Metadata(pages)
		md.SourceDocument = fh.Filename
		for i := range resp.Records {
			resp.Records[i].SourceDocument = fh.Filename
		}
		resp.Metadata = &md
	}
	if resp.Records == nil {
		resp.Records = []models.TransactionRecord{}
	}

	h.log.Info().Str("file", fh.Filename).Int("records", resp.Count).Msg("converted upload")
	return c.JSON(resp)
}

func (h *Handler) fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success: false,
		Error:   msg,
		Records: []models.TransactionRecord{},
	})
}
