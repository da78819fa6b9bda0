package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/pkg/httpx"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// pathID parses the ULID path parameter name.
func pathID(r *http.Request, name string) (idx.ID, error) {
	id, err := idx.Parse(chi.URLParam(r, name))
	if err != nil {
		return idx.Zero, fmt.Errorf("%w: %s must be a valid ULID", httpx.ErrBadRequest, name)
	}
	return id, nil
}

// pageParams reads limit and offset from the query string.
func pageParams(r *http.Request) (store.Page, error) {
	page := store.Page{Limit: defaultPageLimit}

	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPageLimit {
			return store.Page{}, fmt.Errorf("%w: limit must be between 1 and %d", httpx.ErrBadRequest, maxPageLimit)
		}
		page.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return store.Page{}, fmt.Errorf("%w: offset must be a non-negative integer", httpx.ErrBadRequest)
		}
		page.Offset = n
	}
	return page, nil
}
