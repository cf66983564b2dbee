package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	ErrDBInternal      = errors.New("database internal error")
	ErrStorageInternal = errors.New("client storage internal error")
	ErrNotFound        = errors.New("record not found")

	ErrProductNotFound = errors.New("product not found")

	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionIsExpired = errors.New("session is expired")
	ErrNoAuth           = errors.New("authorization required")

	ErrBadID = errors.New("bad id")

	ErrEmptyCart           = errors.New("cart is empty")
	ErrCheckoutNotFound    = errors.New("checkout session not found")
	ErrCheckoutNotActive   = errors.New("checkout session is not active")
	ErrIllegalTransition   = errors.New("illegal checkout step transition")
	ErrMissingShippingInfo = errors.New("all shipping fields are required")
	ErrMissingPaymentInfo  = errors.New("all payment fields are required")
	ErrPaymentDeclined     = errors.New("payment was declined")

	ErrInvalidJSONPayload = errors.New("invalid JSON payload")

	ErrIndexing = errors.New("indexing error")
	ErrSearch   = errors.New("search error")
)

type ErrorServer struct {
	Message string `json:"message"`
}

func (e *ErrorServer) Error() string {
	return e.Message
}

/*
NewErrorServer
Функция имеет возможность принимать "nil ошибку"
при получении nil наша функция понимает, что нам
просто надо отдать саксесс клиенту
*/
func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Message: "success",
		}
	}

	return ErrorServer{
		Message: err.Error(),
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}
