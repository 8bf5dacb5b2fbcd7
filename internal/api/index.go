// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/skillcompass/skillcompass/internal/logging"
	"github.com/skillcompass/skillcompass/internal/recommend"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// indexData feeds the form page template.
type indexData struct {
	CourseCount int
	Samples     []recommend.Profile
}

// Index handles GET /: the profile entry form. The form submits to the
// JSON API from the browser, so the page itself carries no state.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := indexData{
		CourseCount: len(h.courses),
		Samples:     recommend.SampleProfiles(),
	}
	if err := indexTemplate.Execute(w, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render index page")
	}
}
