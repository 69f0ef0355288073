package server

import (
	"math"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/tilestyle/pkg/buildinfo"
	"github.com/matzehuels/tilestyle/pkg/errors"
	"github.com/matzehuels/tilestyle/pkg/geo"
	"github.com/matzehuels/tilestyle/pkg/resolve"
	"github.com/matzehuels/tilestyle/pkg/style"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

// =============================================================================
// Presets
// =============================================================================

type presetSummary struct {
	Name   string       `json:"name"`
	Colors style.Colors `json:"colors"`
}

type presetResponse struct {
	Name     string       `json:"name"`
	Fallback bool         `json:"fallback,omitempty"`
	Style    style.Config `json:"style"`
	Colors   style.Colors `json:"colors"`
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	names := s.registry.Names()
	out := make([]presetSummary, 0, len(names))
	for _, name := range names {
		cfg, _ := s.registry.Lookup(name)
		out = append(out, presetSummary{Name: name, Colors: style.ExtractColors(cfg)})
	}
	writeJSON(w, http.StatusOK, out)
}

// lookupPreset resolves the {name} URL parameter. Unknown names fall back to
// the default preset unless the request sets ?strict=true.
func (s *Server) lookupPreset(r *http.Request) (presetResponse, error) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidatePresetName(name); err != nil {
		return presetResponse{}, err
	}
	strict, _ := strconv.ParseBool(r.URL.Query().Get("strict"))

	cfg, ok := s.registry.Lookup(name)
	if !ok {
		if strict {
			return presetResponse{}, errors.New(errors.ErrCodeNotFound, "unknown preset %q", name)
		}
		cfg = s.registry.NewCustom(name)
	}
	return presetResponse{
		Name:     name,
		Fallback: !ok,
		Style:    cfg,
		Colors:   style.ExtractColors(cfg),
	}, nil
}

func (s *Server) handlePreset(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lookupPreset(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePresetColors(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lookupPreset(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Colors)
}

// handleStyle returns the server's effective style.
func (s *Server) handleStyle(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, presetResponse{
		Style:  s.base,
		Colors: style.ExtractColors(s.base),
	})
}

// =============================================================================
// Properties
// =============================================================================

type propertyResponse struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	Known       bool   `json:"known"`
}

func (s *Server) handleProperties(w http.ResponseWriter, _ *http.Request) {
	keys := style.PropertyKeys()
	out := make([]propertyResponse, len(keys))
	for i, key := range keys {
		out[i] = propertyResponse{Key: key, Description: style.PropertyInfo(key), Known: true}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleProperty(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := errors.ValidatePropertyKey(key); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, propertyResponse{
		Key:         key,
		Description: style.PropertyInfo(key),
		Known:       style.IsPropertyKey(key),
	})
}

// =============================================================================
// Colors
// =============================================================================

type rgbaResponse struct {
	Hex   string  `json:"hex"`
	Alpha float64 `json:"alpha"`
	RGBA  string  `json:"rgba"`
}

func (s *Server) handleRGBA(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	hex := q.Get("hex")
	alpha := style.OpaqueAlpha
	if v := q.Get("alpha"); v != "" {
		a, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(a) || math.IsInf(a, 0) {
			writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid alpha %q", v))
			return
		}
		alpha = a
	}
	writeJSON(w, http.StatusOK, rgbaResponse{Hex: hex, Alpha: alpha, RGBA: style.HexToRGBA(hex, alpha)})
}

// =============================================================================
// Merge
// =============================================================================

type mergeRequest struct {
	Preset    string       `json:"preset,omitempty"`
	Base      style.Config `json:"base,omitempty"`
	Overrides style.Config `json:"overrides"`
}

// baseFor picks the configuration a request builds on: an explicit base, a
// named preset, or the server's effective style.
func (s *Server) baseFor(preset string, base style.Config) (style.Config, error) {
	switch {
	case base != nil:
		return base, nil
	case preset != "":
		cfg, ok := s.registry.Lookup(preset)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidPreset, "unknown preset %q", preset)
		}
		return cfg, nil
	default:
		return s.base.Clone(), nil
	}
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	base, err := s.baseFor(req.Preset, req.Base)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, style.Merge(base, req.Overrides))
}

// =============================================================================
// Resolve
// =============================================================================

type resolveRequest struct {
	Preset   string            `json:"preset,omitempty"`
	Style    style.Config      `json:"style,omitempty"`
	Features []resolve.Feature `json:"features"`
}

type resolveResponse struct {
	Count  int             `json:"count"`
	Styles []resolve.Style `json:"styles"`
}

// handleResolve resolves a batch of features. The body is either a
// resolveRequest or, with Content-Type application/geo+json, a GeoJSON
// FeatureCollection whose preset comes from the ?preset query parameter.
// A style in the request is merged over the preset.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "application/geo+json" {
		features, err := geo.ReadGeoJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeError(w, r, err)
			return
		}
		req.Features = features
		req.Preset = r.URL.Query().Get("preset")
	} else if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resolver := s.resolver
	if req.Preset != "" || req.Style != nil {
		base, err := s.baseFor(req.Preset, nil)
		if err != nil {
			writeError(w, r, err)
			return
		}
		resolver = resolve.New(style.Merge(base, req.Style))
	}

	styles, err := resolver.ResolveContext(r.Context(), req.Features)
	if err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "resolve cancelled"))
		return
	}
	writeJSON(w, http.StatusOK, resolveResponse{Count: len(styles), Styles: styles})
}
