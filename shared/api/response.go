package api

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// ServerErrorMessage is the only text a client sees for a 500.
const ServerErrorMessage = "terjadi kegagalan pada server kami"

// Response is the envelope of every JSON body the API writes.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
