package shared

import "net/http"

// Response is the envelope every endpoint returns: the payload, the HTTP
// status it was served with, and a human-readable message.
type Response struct {
	Data       any    `json:"data"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func OK(data any, message string) *Response {
	return &Response{Data: data, StatusCode: http.StatusOK, Message: message}
}

func Created(data any, message string) *Response {
	return &Response{Data: data, StatusCode: http.StatusCreated, Message: message}
}

func BadRequest(message string) *Response {
	return &Response{StatusCode: http.StatusBadRequest, Message: message}
}

func NotFound(message string) *Response {
	return &Response{StatusCode: http.StatusNotFound, Message: message}
}

func Internal(message string) *Response {
	return &Response{StatusCode: http.StatusInternalServerError, Message: message}
}
