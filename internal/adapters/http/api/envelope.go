package api

import (
	"encoding/json"
	"net/http"
)

// failedMessage is the envelope message of every error response.
const failedMessage = "Request failed"

// successMessages maps a success status to its envelope message. Codes not
// listed fall back to defaultSuccessMessage.
var successMessages = map[int]string{
	http.StatusOK:        "Request successful",
	http.StatusCreated:   "Resource created successfully",
	http.StatusNoContent: "Request successful - No content",
}

const defaultSuccessMessage = "Request successful"

// Envelope is the body of every API response. Exactly one of Error and Data
// is serialized: Error when the request failed, Data otherwise. Status always
// equals the transport status code.
type Envelope struct {
	Message string
	Status  int
	Error   string
	Data    any
}

// Success builds the envelope for a successful response with the given
// transport status.
func Success(status int, data any) Envelope {
	return Envelope{Message: SuccessMessage(status), Status: status, Data: data}
}

// Failure builds the envelope for a failed response. An empty msg falls back
// to the status text so the error field is never blank.
func Failure(status int, msg string) Envelope {
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = "Unknown Error"
	}
	return Envelope{Message: failedMessage, Status: status, Error: msg}
}

// SuccessMessage returns the message for a success status.
func SuccessMessage(status int) string {
	if msg, ok := successMessages[status]; ok {
		return msg
	}
	return defaultSuccessMessage
}

// Failed reports whether e describes an error response.
func (e Envelope) Failed() bool { return e.Error != "" }

type successBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Data    any    `json:"data"`
}

type failureBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Error   string `json:"error"`
}

// MarshalJSON emits either the error key or the data key, never both. A nil
// Data on a success still produces "data": null.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Failed() {
		return json.Marshal(failureBody{Message: e.Message, Status: e.Status, Error: e.Error})
	}
	return json.Marshal(successBody{Message: e.Message, Status: e.Status, Data: e.Data})
}

// Result lets a handler choose the success status instead of the method
// default. See WithStatus.
type Result struct {
	Status int
	Data   any
}

// WithStatus returns a handler payload that is sent with the given status.
func WithStatus(status int, data any) Result {
	return Result{Status: status, Data: data}
}

// defaultStatus is the status used when a handler does not pick one:
// 201 for POST, 200 for everything else.
func defaultStatus(method string) int {
	if method == http.MethodPost {
		return http.StatusCreated
	}
	return http.StatusOK
}
