package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// pathID binds the {id} path segment as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid format for parameter id: %w", err)
	}
	return id, nil
}

// queryInt binds an integer query parameter. Absent optional parameters return nil.
func queryInt(r *http.Request, name string, required bool) (*int, error) {
	var v *int
	if err := runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), &v); err != nil {
		return nil, fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return v, nil
}

// queryDate binds a YYYY-MM-DD query parameter. Absent optional parameters
// return the zero Date.
func queryDate(r *http.Request, name string, required bool) (domain.Date, error) {
	var v *openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), &v); err != nil {
		return domain.Date{}, fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	if v == nil {
		return domain.Date{}, nil
	}
	return domain.DateOf(v.Time), nil
}

// pageParams reads ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func pageParams(r *http.Request) (domain.PaginationParams, error) {
	page, err := queryInt(r, "page", false)
	if err != nil {
		return domain.PaginationParams{}, err
	}
	limit, err := queryInt(r, "limit", false)
	if err != nil {
		return domain.PaginationParams{}, err
	}
	return domain.NewPaginationParams(page, limit), nil
}

func pagination(p domain.PaginationParams, total int64) Pagination {
	return Pagination{Page: p.Page, Limit: p.Limit, Total: int(total), Pages: p.Pages(total)}
}

// decodeJSON reads a JSON request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || errors.Is(err, domain.ErrValidation) {
			return err
		}
		return fmt.Errorf("malformed request body: %w", err)
	}
	return nil
}
