package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// NoDataProvidedMessage is returned when a POST endpoint receives an empty body.
const NoDataProvidedMessage = "No data provided"

var validate = validator.New(validator.WithRequiredStructEnabled())

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	respondJSON(w, err.statusCode, err)
}

// decodeRequest reads a JSON body into dst and validates it. Unless allowEmpty is
// set, an empty body, null or {} is reported as NoDataProvidedMessage.
func decodeRequest(r *http.Request, dst any, allowEmpty bool) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return domain.NewValidationErr("invalid request body: " + err.Error())
	}
	trimmed := bytes.TrimSpace(body)
	empty := len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
	if !allowEmpty && (empty || isEmptyObject(trimmed)) {
		return domain.NewValidationErr(NoDataProvidedMessage)
	}

	if !empty {
		if err := json.Unmarshal(trimmed, dst); err != nil {
			return domain.NewValidationErr("invalid request body: " + err.Error())
		}
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fe.Field()+" failed on "+fe.Tag())
			}
			return domain.NewValidationErr("invalid request: " + strings.Join(msgs, ", "))
		}
		return domain.NewValidationErr("invalid request: " + err.Error())
	}
	return nil
}

func isEmptyObject(body []byte) bool {
	var m map[string]json.RawMessage
	return json.Unmarshal(body, &m) == nil && len(m) == 0
}
