package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SkinTrade_Go/internal/catalog"
	"github.com/osse101/SkinTrade_Go/internal/domain"
)

// CatalogResponse is a filtered page of the skin catalog
type CatalogResponse struct {
	Tab   string        `json:"tab"`
	Query string        `json:"query,omitempty"`
	Items []domain.Skin `json:"items"`
	Count int           `json:"count"`
}

// HandleCatalog lists skins filtered by tab and search query
// @Summary Browse skins
// @Description Skins matching the tab (all, csgo, valorant) and a case-insensitive name search
// @Tags catalog
// @Produce json
// @Param tab query string false "Tab key" default(all)
// @Param q query string false "Search text"
// @Success 200 {object} CatalogResponse
// @Router /catalog [get]
func HandleCatalog(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := catalog.Filter{
			Tab:   GetOptionalQueryParam(r, "tab", catalog.TabAll),
			Query: r.URL.Query().Get("q"),
		}
		items := svc.List(r.Context(), f)
		if items == nil {
			items = []domain.Skin{}
		}
		respondJSON(w, http.StatusOK, CatalogResponse{
			Tab:   f.Tab,
			Query: f.Query,
			Items: items,
			Count: len(items),
		})
	}
}

// HandleCatalogTabs lists the catalog tabs
// @Summary Catalog tabs
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Tab
// @Router /catalog/tabs [get]
func HandleCatalogTabs(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Tabs())
	}
}

// HandleGetSkin returns one skin
// @Summary Get skin
// @Tags catalog
// @Produce json
// @Param id path string true "Skin ID"
// @Success 200 {object} domain.Skin
// @Failure 404 {object} ErrorResponse
// @Router /catalog/{id} [get]
func HandleGetSkin(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skin, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "Get skin", err)
			return
		}
		respondJSON(w, http.StatusOK, skin)
	}
}
