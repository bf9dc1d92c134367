package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/auth"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/domain"
)

var errUnknownDashboard = errors.New("unknown dashboard")

func GetRoleFromContext(r *http.Request) (string, error) {
	authorization := r.Header.Get("Authorization")

	_, claims, err := auth.TokenClaims(authorization)
	if err != nil {
		return "", err
	}

	if role, ok := claims["role"].(string); ok {
		return role, nil
	}
	return "", nil
}

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// writeDomainError maps the error taxonomy onto HTTP statuses:
// validation 400, not found 404, empty data 422, export failure and
// everything else 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, errUnknownDashboard), errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrEmptyData):
		http.Error(w, "no data to export", http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrExportFailure):
		log.Error().Err(err).Msg("export failed")
		http.Error(w, "export failed", http.StatusInternalServerError)
	default:
		log.Error().Err(err).Msg("internal error")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
