package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

// formatJSON returns the flattened node tree instead of a rendering.
const formatJSON = "json"

var contentTypes = map[string]string{
	string(bbcode.FormatHTML):     "text/html; charset=utf-8",
	string(bbcode.FormatText):     "text/plain; charset=utf-8",
	string(bbcode.FormatBBCode):   "text/plain; charset=utf-8",
	string(bbcode.FormatMarkdown): "text/markdown; charset=utf-8",
	string(bbcode.FormatADF):      "application/json",
	formatJSON:                    "application/json",
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = s.cfg.DefaultFormat
		if format == string(bbcode.FormatANSI) {
			format = string(bbcode.FormatHTML)
		}
	}
	contentType, ok := contentTypes[format]
	if !ok {
		jsonError(w, fmt.Sprintf("unsupported format: %s", format), http.StatusBadRequest)
		return
	}

	colorFormat := r.URL.Query().Get("color_format")
	if colorFormat == "" {
		colorFormat = s.cfg.ColorFormat
	}
	if err := bbcode.ValidateColorFormat(colorFormat); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	text, ok := s.readBody(w, r)
	if !ok {
		return
	}

	doc, err := bbcode.ParseWithOptions(text, s.cfg.ParseOptions())
	if err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return
	}

	var body []byte
	if format == formatJSON {
		body, err = json.Marshal(bbcode.Flatten(doc))
	} else {
		var out string
		out, err = bbcode.Render(doc, bbcode.Format(format), bbcode.RenderOptions{
			HTML: bbcode.HTMLOptions{ColorFormat: bbcode.ColorFormat(colorFormat)},
		})
		body = []byte(out)
	}
	if err != nil {
		s.log.Error().Err(err).Str("format", format).Msg("Render failed")
		jsonError(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(body)
}

func (s *Server) handleFromMarkdown(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readBody(w, r)
	if !ok {
		return
	}

	markup, err := bbcode.FromMarkdown([]byte(text))
	if err != nil {
		s.log.Error().Err(err).Msg("Markdown conversion failed")
		jsonError(w, "conversion failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(markup))
}

// readBody reads and trims the request body. Bodies larger than the
// configured input limit are rejected before trimming.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	limit := int64(s.cfg.MaxInputBytes)
	reader := io.Reader(r.Body)
	if limit > 0 {
		reader = io.LimitReader(r.Body, limit+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return "", false
	}
	if limit > 0 && int64(len(data)) > limit {
		jsonError(w, fmt.Sprintf("%s: body exceeds %d bytes", bbcode.ErrInputTooLarge, limit), http.StatusRequestEntityTooLarge)
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, bbcode.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, bbcode.ErrDepthExceeded):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
