package export

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/figurate/figurate/backend-go/internal/engine"
	"github.com/figurate/figurate/backend-go/internal/figure"
)

const maxFigureSize = 1 << 20 // 1MB

// Handler serves the rendering endpoints. The request body is the figure
// JSON; mode, width, height and padding come from query parameters.
type Handler struct {
	padding     float64
	diagnostics bool
}

func NewHandler(padding float64, diagnostics bool) *Handler {
	return &Handler{padding: padding, diagnostics: diagnostics}
}

// RenderSVG renders a figure to an inline-embeddable SVG document.
func (h *Handler) RenderSVG(w http.ResponseWriter, r *http.Request) {
	f, opts, ok := h.readFigure(w, r)
	if !ok {
		return
	}

	svg, skipped := engine.RenderSVG(f, opts)
	h.reportSkipped(r, skipped)

	w.Header().Set("Content-Type", "image/svg+xml")
	io.WriteString(w, svg)
}

// RenderPNG renders a figure and rasterizes it for the static image/print
// pipeline.
func (h *Handler) RenderPNG(w http.ResponseWriter, r *http.Request) {
	f, opts, ok := h.readFigure(w, r)
	if !ok {
		return
	}

	svg, skipped := engine.RenderSVG(f, opts)
	h.reportSkipped(r, skipped)

	var buf bytes.Buffer
	if err := rasterizePNG(svg, opts.Width, opts.Height, &buf); err != nil {
		slog.Error("rasterize figure", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// RenderBoard returns resolved coordinates for the interactive graphing
// surface, which owns its own grid and viewport.
func (h *Handler) RenderBoard(w http.ResponseWriter, r *http.Request) {
	f, _, ok := h.readFigure(w, r)
	if !ok {
		return
	}

	elems := engine.BoardElements(f)
	if h.diagnostics {
		res := engine.Resolve(f)
		h.reportSkipped(r, res.Skipped)
	}

	writeJSON(w, http.StatusOK, map[string]any{"elements": elems})
}

// SampleFigure returns the built-in demo figure.
func (h *Handler) SampleFigure(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, figure.NewSampleFigure())
}

func (h *Handler) readFigure(w http.ResponseWriter, r *http.Request) (*figure.Figure, engine.Options, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxFigureSize))
	if err != nil {
		http.Error(w, "request too large", http.StatusBadRequest)
		return nil, engine.Options{}, false
	}

	f, err := engine.ParseFigure(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid figure JSON"})
		return nil, engine.Options{}, false
	}

	return f, h.parseOptions(r), true
}

func (h *Handler) parseOptions(r *http.Request) engine.Options {
	q := r.URL.Query()

	opts := engine.Options{
		Mode:    figure.Mode(q.Get("mode")),
		Padding: h.padding,
	}
	if v, err := strconv.Atoi(q.Get("width")); err == nil && v > 0 && v <= 4096 {
		opts.Width = v
	}
	if v, err := strconv.Atoi(q.Get("height")); err == nil && v > 0 && v <= 4096 {
		opts.Height = v
	}
	return opts
}

// reportSkipped logs dropped objects when diagnostics are on. By default an
// unresolvable object disappears silently; this is the switch that tells
// "empty by design" apart from bad upstream data.
func (h *Handler) reportSkipped(r *http.Request, skipped []engine.Skipped) {
	if !h.diagnostics || len(skipped) == 0 {
		return
	}
	for _, s := range skipped {
		slog.Info("figure object skipped", "path", r.URL.Path, "id", s.ID, "reason", s.Reason)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
