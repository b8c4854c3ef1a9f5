package response

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
)

// ResponseError is the body of every failed request.
type ResponseError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Message is the body of a request that only reports an outcome.
type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func SuccessJSON(w http.ResponseWriter, status int, v any) {
	WriteJSON(w, status, v)
}

// ErrorJSON writes err as {success:false, message}. Errors that are not *apperr.AppError become a 500
// and their text is not exposed.
func ErrorJSON(w http.ResponseWriter, err error) {
	if appErr, ok := apperr.As(err); ok {
		WriteJSON(w, appErr.Status(), ResponseError{Success: false, Message: appErr.Msg})
		return
	}
	WriteJSON(w, http.StatusInternalServerError, ResponseError{
		Success: false,
		Message: apperr.ErrStrMap[apperr.InternalErrorCode],
	})
}

func BadRequest(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = apperr.ErrStrMap[apperr.BadRequestCode]
	}
	WriteJSON(w, http.StatusBadRequest, ResponseError{Success: false, Message: msg})
}
