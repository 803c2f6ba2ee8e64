package i18n

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body of the API. Every endpoint, success
// or failure, replies with {statusCode, data, message}.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

// RespondWithError sends the error envelope for the given error. Unknown
// error types map to 500.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	statusCode := http.StatusInternalServerError
	errorMsg := TranslateError(c, err)

	var errWithCode *ErrorWithCode
	if errors.As(err, &errWithCode) {
		statusCode = int(errWithCode.GetCode())
	}

	c.JSON(statusCode, Envelope{
		StatusCode: statusCode,
		Data:       gin.H{},
		Message:    errorMsg,
	})
}

// RespondWithSuccess sends a success envelope with an internationalized message
func RespondWithSuccess(c *gin.Context, statusCode int, msgID string, params map[string]any, payload any) {
	message := TranslateMessage(c, msgID, params)
	if payload == nil {
		payload = gin.H{}
	}
	c.JSON(statusCode, Envelope{
		StatusCode: statusCode,
		Data:       payload,
		Message:    message,
	})
}

// SuccessResponse is a builder for success envelopes
type SuccessResponse struct {
	StatusCode int
	MsgID      string
	Params     map[string]any
	Payload    any
}

// With adds a template parameter for the translated message
func (r *SuccessResponse) With(key string, value any) *SuccessResponse {
	if r.Params == nil {
		r.Params = make(map[string]any)
	}
	r.Params[key] = value
	return r
}

// WithPayload sets the data section of the envelope
func (r *SuccessResponse) WithPayload(payload any) *SuccessResponse {
	r.Payload = payload
	return r
}

// Send sends the response to the client
func (r *SuccessResponse) Send(c *gin.Context) {
	RespondWithSuccess(c, r.StatusCode, r.MsgID, r.Params, r.Payload)
}

// Success creates a new success response with status code 200
func Success(msgID string) *SuccessResponse {
	return &SuccessResponse{
		StatusCode: http.StatusOK,
		MsgID:      msgID,
	}
}

// Created creates a new success response with status code 201
func Created(msgID string) *SuccessResponse {
	return &SuccessResponse{
		StatusCode: http.StatusCreated,
		MsgID:      msgID,
	}
}
