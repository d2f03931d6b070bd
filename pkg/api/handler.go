// Copyright (c) 2025, The Brewkit Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/mchmarny/brewkit/pkg/calculator"
	"github.com/mchmarny/brewkit/pkg/catalog"
	"github.com/mchmarny/brewkit/pkg/defaults"
	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
	"github.com/mchmarny/brewkit/pkg/serializer"
	"github.com/mchmarny/brewkit/pkg/server"
)

// Handler serves the calculator and dataset search endpoints.
type Handler struct {
	catalog    *catalog.Catalog
	calculator *calculator.Calculator
}

// NewHandler returns a Handler backed by cat and calc.
func NewHandler(cat *catalog.Catalog, calc *calculator.Calculator) *Handler {
	return &Handler{
		catalog:    cat,
		calculator: calc,
	}
}

// Routes returns the API handlers keyed by "METHOD /path".
func (h *Handler) Routes() map[string]http.HandlerFunc {
	c := h.calculator
	return map[string]http.HandlerFunc{
		"POST /calculate/abv":             calculate(calculator.NameABV, c.ABV),
		"POST /calculate/abw":             calculate(calculator.NameABW, c.ABW),
		"POST /calculate/fg":              calculate(calculator.NameFG, c.FG),
		"POST /calculate/bottles":         calculate(calculator.NameBottles, c.Bottles),
		"POST /calculate/calories":        calculate(calculator.NameCalories, c.Calories),
		"POST /calculate/dilution":        calculate(calculator.NameDilution, c.Dilution),
		"POST /calculate/sg-correction":   calculate(calculator.NameSGCorrection, c.SGCorrection),
		"POST /calculate/priming":         calculate(calculator.NamePriming, h.priming),
		"POST /calculate/ibu":             calculate(calculator.NameIBU, c.IBU),
		"POST /calculate/bittering":       calculate(calculator.NameBittering, c.Bittering),
		"POST /calculate/yeast-viability": calculate(calculator.NameYeastViability, c.YeastViability),
		"GET /styles":                     h.HandleStyles,
		"GET /hops":                       h.HandleHops,
		"GET /yeasts":                     h.HandleYeasts,
	}
}

// priming responds with the sugar list only.
func (h *Handler) priming(req calculator.PrimingRequest) ([]calculator.SugarResult, error) {
	res, err := h.calculator.Priming(req)
	if err != nil {
		return nil, err
	}
	return res.Sugars, nil
}

// calculate adapts a calculator to an HTTP handler that decodes the
// request body, runs fn and responds with its result.
func calculate[Req, Res any](name string, fn func(Req) (Res, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Add request-scoped timeout
		ctx, cancel := context.WithTimeout(r.Context(), defaults.CalculateHandlerTimeout)
		defer cancel()

		var req Req
		if err := decodeBody(r, &req); err != nil {
			calculationsTotal.WithLabelValues(name, outcome(err)).Inc()
			server.WriteErrorFromErr(w, r, err, "Invalid request body", nil)
			return
		}

		res, err := fn(req)
		if err == nil {
			err = ctx.Err()
		}
		calculationsTotal.WithLabelValues(name, outcome(err)).Inc()
		if err != nil {
			slog.Debug("calculation failed", "calculator", name, "error", err,
				"requestID", server.RequestID(r.Context()))
			server.WriteErrorFromErr(w, r, err, "Calculation failed", map[string]any{
				"calculator": name,
			})
			return
		}

		serializer.RespondJSON(w, http.StatusOK, res)
	}
}

// decodeBody reads a JSON or YAML request body into v, picking the format
// from the Content-Type header. Anything that is not YAML is read as JSON.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return brewerrors.New(brewerrors.ErrCodeInvalidRequest, "request body is empty")
	}
	defer r.Body.Close()

	reader, err := serializer.NewReader(bodyFormat(r.Header.Get("Content-Type")), r.Body)
	if err != nil {
		return brewerrors.Wrap(brewerrors.ErrCodeInternal, "failed to create body reader", err)
	}

	if err := reader.Deserialize(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return brewerrors.WrapWithContext(brewerrors.ErrCodeInvalidRequest,
				"request body too large", err, map[string]any{"limit": maxErr.Limit})
		case errors.Is(err, io.EOF):
			return brewerrors.New(brewerrors.ErrCodeInvalidRequest, "request body is empty")
		default:
			return brewerrors.Wrap(brewerrors.ErrCodeInvalidRequest, "malformed request body", err)
		}
	}
	return nil
}

func bodyFormat(contentType string) serializer.Format {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	// Extract media type (strip charset and other params)
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		return serializer.FormatYAML
	default:
		return serializer.FormatJSON
	}
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return strings.ToLower(string(brewerrors.ErrCodeTimeout))
	}
	return strings.ToLower(string(brewerrors.CodeOf(err)))
}

// HandleStyles searches beer styles by the query parameters.
func (h *Handler) HandleStyles(w http.ResponseWriter, r *http.Request) {
	search(w, r, catalog.ParseStyleCriteria, h.catalog.FindStyles)
}

// HandleHops searches hops by the query parameters.
func (h *Handler) HandleHops(w http.ResponseWriter, r *http.Request) {
	search(w, r, catalog.ParseHopCriteria, h.catalog.FindHops)
}

// HandleYeasts searches yeasts by the query parameters.
func (h *Handler) HandleYeasts(w http.ResponseWriter, r *http.Request) {
	search(w, r, catalog.ParseYeastCriteria, func(c catalog.YeastCriteria) []catalog.YeastResult {
		return catalog.YeastResults(h.catalog.FindYeasts(c))
	})
}

func search[C, T any](w http.ResponseWriter, r *http.Request,
	parse func(url.Values) (C, error), find func(C) []T) {

	ctx, cancel := context.WithTimeout(r.Context(), defaults.SearchHandlerTimeout)
	defer cancel()

	criteria, err := parse(r.URL.Query())
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid search criteria", nil)
		return
	}

	results := find(criteria)
	if err := ctx.Err(); err != nil {
		server.WriteErrorFromErr(w, r, err, "Search failed", nil)
		return
	}

	searchResults.WithLabelValues(strings.TrimPrefix(r.URL.Path, "/")).Observe(float64(len(results)))

	// Datasets never change while the process runs
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.SearchCacheTTL.Seconds())))

	serializer.RespondJSON(w, http.StatusOK, results)
}
