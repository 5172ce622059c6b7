// Package service wires document extraction, report normalization and
// summary composition behind HTTP and MCP transports.
package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/harshzz13/medscribe/docload"
	"github.com/harshzz13/medscribe/idgen"
	"github.com/harshzz13/medscribe/report"
	"github.com/harshzz13/medscribe/summarize"
)

// Service is the medscribe application core shared by all transports.
type Service struct {
	cfg         *Config
	logger      *slog.Logger
	docs        *docload.Pipeline
	newReportID idgen.Generator
}

// New builds a Service from config. A nil logger falls back to slog.Default.
func New(cfg *Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:    cfg,
		logger: logger,
		docs: docload.New(docload.Config{
			MaxFileSize: cfg.MaxFileBytes(),
			Logger:      logger,
		}),
		newReportID: idgen.Prefixed("rpt_", idgen.UUIDv7()),
	}
}

// Result is the summary payload returned to presentation clients.
type Result struct {
	ReportID          string   `json:"report_id"`
	DoctorSummary     string   `json:"doctor_summary"`
	PatientSummary    string   `json:"patient_summary"`
	OriginalWordCount int      `json:"original_word_count"`
	DoctorWordCount   int      `json:"doctor_word_count"`
	PatientWordCount  int      `json:"patient_word_count"`
	Highlights        []string `json:"highlights,omitempty"`
}

// Summarize runs the full pipeline on raw report text. Empty input is
// valid and yields the placeholder summaries.
func (s *Service) Summarize(rawText string, opts summarize.Options) *Result {
	cleaned := report.Clean(rawText)
	doctor := summarize.DoctorSummary(cleaned, opts)
	patient := summarize.PatientSummary(cleaned, opts)

	res := &Result{
		ReportID:          s.newReportID(),
		DoctorSummary:     doctor,
		PatientSummary:    patient,
		OriginalWordCount: wordCount(rawText),
		DoctorWordCount:   wordCount(doctor),
		PatientWordCount:  wordCount(patient),
		Highlights:        summarize.KeySentences(cleaned, opts.Length),
	}
	s.logger.Info("report summarized",
		"report_id", res.ReportID,
		"length", string(opts.Length),
		"original_words", res.OriginalWordCount)
	return res
}

// SummarizeUpload extracts text from an uploaded document, then summarizes it.
func (s *Service) SummarizeUpload(ctx context.Context, name string, data []byte, opts summarize.Options) (*Result, error) {
	doc, err := s.docs.ExtractBytes(ctx, name, data)
	if err != nil {
		return nil, err
	}
	return s.Summarize(doc.Text, opts), nil
}

// Extract runs normalization plus the structural passes without composing
// summaries. Used by the MCP extract tool.
func (s *Service) Extract(rawText string) (string, map[string]string, report.Info) {
	cleaned := report.Clean(rawText)
	return cleaned, report.ExtractSections(cleaned), report.ExtractInfo(cleaned)
}

// defaultOptions derives per-request option defaults from config.
func (s *Service) defaultOptions() summarize.Options {
	opts := summarize.DefaultOptions()
	if s.cfg.DefaultLength != "" {
		opts.Length = summarize.Length(s.cfg.DefaultLength)
	}
	return opts
}

func wordCount(text string) int { return len(strings.Fields(text)) }
