package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/openforum-dev/forumapi/shared/api"
	internal_errors "github.com/openforum-dev/forumapi/shared/errors"
	"github.com/openforum-dev/forumapi/shared/logger"
)

// ErrBodyTypeMismatch is returned by Decode when a field holds a JSON value
// of the wrong type. Handlers map it to the payload's data type code.
var ErrBodyTypeMismatch = errors.New("body field has unexpected type")

// WriteErrorAndStatusCode translates err and writes the fail envelope.
// Anything without a status code is logged and hidden behind a 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	err = internal_errors.Translate(err)

	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		WriteJSON(w, e.StatusCode, api.Response{Status: api.StatusFail, Message: e.Message})
		return
	}

	logger.Component("http").Error("unhandled error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, api.Response{Status: api.StatusError, Message: api.ServerErrorMessage})
}

// WriteSuccess wraps data in the success envelope. A nil data is omitted.
func WriteSuccess(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, api.Response{Status: api.StatusSuccess, Data: data})
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Component("http").Error("failed to encode response", "error", err)
	}
}

func GetIP(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	if net.ParseIP(ip) != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	for _, ip := range strings.Split(r.Header.Get("X-FORWARDED-FOR"), ",") {
		ip = strings.TrimSpace(ip)
		if net.ParseIP(ip) != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", fmt.Errorf("failed to parse remote addr: %w", err)
	}
	if net.ParseIP(ip) != nil {
		return ip, nil
	}
	return "", fmt.Errorf("no valid ip found")
}

// Decode reads a JSON object into body. An empty body decodes to the zero
// value so that missing fields are reported by the domain constructors.
func Decode(r io.Reader, body any) error {
	err := json.NewDecoder(r).Decode(body)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return ErrBodyTypeMismatch
	}
	logger.Component("http").Debug("invalid request body", "error", err)
	return internal_errors.Invariant("payload harus berupa JSON yang valid")
}
