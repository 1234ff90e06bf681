package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/notjagan/typechart/pkg/matchup"
	"github.com/notjagan/typechart/pkg/model"
)

const (
	invalidSelectionMessage = "Please enter a valid type combination"
	unknownTypeMessage      = "Type not found"
	unknownCategoryMessage  = "Category not found"
)

type MatchupHandler struct {
	resolver *matchup.Resolver
}

func NewMatchupHandler(resolver *matchup.Resolver) *MatchupHandler {
	return &MatchupHandler{resolver: resolver}
}

type TypesResponse struct {
	Types []string `json:"types"`
}

type MatchupResponse struct {
	Primary   string           `json:"primary,omitempty"`
	Secondary string           `json:"secondary,omitempty"`
	Offense   *matchup.Offense `json:"offense,omitempty"`
	Defense   *matchup.Defense `json:"defense,omitempty"`
}

type CategoryResponse struct {
	Primary   string         `json:"primary,omitempty"`
	Secondary string         `json:"secondary,omitempty"`
	Category  model.Category `json:"category"`
	Types     []string       `json:"types"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Printf("ERROR [api.writeJSON]: %v", err)
	}
}

// writeError maps resolver errors to status codes. It reports whether err
// was non-nil.
func writeError(w http.ResponseWriter, op string, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, matchup.ErrInvalidSelection):
		http.Error(w, invalidSelectionMessage, http.StatusBadRequest)
	case errors.Is(err, model.ErrUnknownType):
		http.Error(w, unknownTypeMessage, http.StatusNotFound)
	default:
		log.Printf("ERROR [%s]: %v", op, err)
		http.Error(w, "Failed to resolve matchup", http.StatusInternalServerError)
	}

	return true
}

func selection(r *http.Request) (matchup.Selection, error) {
	q := r.URL.Query()
	return matchup.NewSelection(q.Get("primary"), q.Get("secondary"))
}

func (h *MatchupHandler) Types(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, TypesResponse{Types: h.resolver.TypeNames()})
}

func (h *MatchupHandler) Get(w http.ResponseWriter, r *http.Request) {
	sel, err := selection(r)
	if writeError(w, "matchup.Get", err) {
		return
	}

	res, err := h.resolver.Resolve(sel)
	if writeError(w, "matchup.Get", err) {
		return
	}

	writeJSON(w, MatchupResponse{
		Primary:   sel.Primary,
		Secondary: sel.Secondary,
		Offense:   &res.Offense,
		Defense:   &res.Defense,
	})
}

func (h *MatchupHandler) Offense(w http.ResponseWriter, r *http.Request) {
	sel, err := selection(r)
	if writeError(w, "matchup.Offense", err) {
		return
	}

	off, err := h.resolver.ResolveOffense(sel)
	if writeError(w, "matchup.Offense", err) {
		return
	}

	writeJSON(w, MatchupResponse{
		Primary:   sel.Primary,
		Secondary: sel.Secondary,
		Offense:   &off,
	})
}

func (h *MatchupHandler) Defense(w http.ResponseWriter, r *http.Request) {
	sel, err := selection(r)
	if writeError(w, "matchup.Defense", err) {
		return
	}

	def, err := h.resolver.ResolveDefense(sel)
	if writeError(w, "matchup.Defense", err) {
		return
	}

	writeJSON(w, MatchupResponse{
		Primary:   sel.Primary,
		Secondary: sel.Secondary,
		Defense:   &def,
	})
}

func (h *MatchupHandler) Category(w http.ResponseWriter, r *http.Request) {
	cat, err := model.CategoryString(chi.URLParam(r, "category"))
	if err != nil {
		http.Error(w, unknownCategoryMessage, http.StatusNotFound)
		return
	}

	sel, err := selection(r)
	if writeError(w, "matchup.Category", err) {
		return
	}

	res, err := h.resolver.Resolve(sel)
	if writeError(w, "matchup.Category", err) {
		return
	}

	writeJSON(w, CategoryResponse{
		Primary:   sel.Primary,
		Secondary: sel.Secondary,
		Category:  cat,
		Types:     res.List(cat),
	})
}
