package service

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/harshzz13/medscribe/docload"
	"github.com/harshzz13/medscribe/shield"
	"github.com/harshzz13/medscribe/summarize"
)

// multipart encoding overhead on top of the file size cap
const multipartSlack = 1 << 20

// Router builds the HTTP API with the shield middleware stack.
func (s *Service) Router() chi.Router {
	r := chi.NewRouter()
	for _, mw := range shield.DefaultStack(s.cfg.MaxFileBytes() + multipartSlack) {
		r.Use(mw)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(shield.BearerAuth(s.cfg.AuthPasswordHash))
		r.Get("/api/formats", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, 200, map[string][]string{"formats": docload.SupportedFormats()})
		})
		r.Post("/api/summarize", s.handleSummarize)
	})

	return r
}

// summarizeRequest is the JSON body of POST /api/summarize.
type summarizeRequest struct {
	Text    string          `json:"text"`
	Options *optionsPayload `json:"options"`
}

// optionsPayload uses pointers so omitted fields keep the configured defaults.
type optionsPayload struct {
	Length                 string `json:"length"`
	IncludeMedications     *bool  `json:"include_medications"`
	IncludeProcedures      *bool  `json:"include_procedures"`
	IncludeRecommendations *bool  `json:"include_recommendations"`
}

func (s *Service) handleSummarize(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		s.handleSummarizeUpload(w, r)
		return
	}

	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, err)
		return
	}
	opts, err := s.resolveOptions(req.Options)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	writeJSON(w, 200, s.Summarize(req.Text, opts))
}

func (s *Service) handleSummarizeUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.MaxFileBytes()); err != nil {
		writeError(w, uploadStatus(err), err)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, 400, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, 400, err)
		return
	}

	opts, err := s.formOptions(r)
	if err != nil {
		writeError(w, 400, err)
		return
	}

	res, err := s.SummarizeUpload(r.Context(), header.Filename, data, opts)
	if err != nil {
		writeError(w, uploadStatus(err), err)
		return
	}
	writeJSON(w, 200, res)
}

// uploadStatus maps extraction failures onto HTTP status codes.
func uploadStatus(err error) int {
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, docload.ErrTooLarge), errors.As(err, &maxErr):
		return 413
	case errors.Is(err, docload.ErrUnsupported):
		return 415
	case errors.Is(err, docload.ErrEncrypted), errors.Is(err, docload.ErrNoText):
		return 422
	default:
		return 400
	}
}

// resolveOptions merges an optional JSON payload over configured defaults.
func (s *Service) resolveOptions(p *optionsPayload) (summarize.Options, error) {
	opts := s.defaultOptions()
	if p == nil {
		return opts, nil
	}
	if p.Length != "" {
		l := summarize.Length(p.Length)
		switch l {
		case summarize.LengthShort, summarize.LengthMedium, summarize.LengthLong:
			opts.Length = l
		default:
			return opts, errors.New("length must be short, medium or long")
		}
	}
	if p.IncludeMedications != nil {
		opts.IncludeMedications = *p.IncludeMedications
	}
	if p.IncludeProcedures != nil {
		opts.IncludeProcedures = *p.IncludeProcedures
	}
	if p.IncludeRecommendations != nil {
		opts.IncludeRecommendations = *p.IncludeRecommendations
	}
	return opts, nil
}

// formOptions reads option overrides from multipart form fields.
func (s *Service) formOptions(r *http.Request) (summarize.Options, error) {
	p := optionsPayload{Length: r.FormValue("length")}
	for key, dst := range map[string]**bool{
		"include_medications":     &p.IncludeMedications,
		"include_procedures":      &p.IncludeProcedures,
		"include_recommendations": &p.IncludeRecommendations,
	} {
		v := r.FormValue(key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s.defaultOptions(), errors.New(key + " must be a boolean")
		}
		*dst = &b
	}
	return s.resolveOptions(&p)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
