package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pantrystack/pantry-tracker/internal/apperr"
)

// decodeBody unmarshals the request body into v. Unknown fields are
// rejected so a misspelled field cannot silently no-op a partial update.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperr.ValidationErr.WrapParent(err)
	}

	return nil
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperr.ValidationErr.WrapParent(err)
	}

	return id, nil
}
