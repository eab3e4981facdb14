package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func HandleSuccess(ctx *gin.Context, data interface{}) {
	respond(ctx, http.StatusOK, data)
}

// HandleCreated 资源创建成功，返回 201
func HandleCreated(ctx *gin.Context, data interface{}) {
	respond(ctx, http.StatusCreated, data)
}

func respond(ctx *gin.Context, status int, data interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	resp := Response{Code: errorCodeMap[ErrSuccess], Message: ErrSuccess.Error(), Data: data}
	ctx.JSON(status, resp)
}

func HandleError(ctx *gin.Context, httpCode int, err error, data interface{}) {
	if data == nil {
		data = map[string]string{}
	}
	resp := Response{Code: errorCodeMap[err], Message: err.Error(), Data: data}
	if _, ok := errorCodeMap[err]; !ok {
		resp = Response{Code: 500, Message: "unknown error", Data: data}
	}
	ctx.JSON(httpCode, resp)
}

// HandleServiceError 按错误表映射 HTTP 状态码；TransitionError 额外返回拒绝原因
func HandleServiceError(ctx *gin.Context, err error) {
	var te *TransitionError
	if errors.As(err, &te) {
		HandleError(ctx, http.StatusBadRequest, ErrInvalidStatusTransition, map[string]string{
			"from":   te.From,
			"to":     te.To,
			"reason": te.Reason,
		})
		return
	}
	if _, ok := errorCodeMap[err]; !ok {
		err = ErrInternalServerError
	}
	HandleError(ctx, HTTPStatus(err), err, nil)
}

var (
	errorCodeMap  = map[error]int{}
	httpStatusMap = map[error]int{}
)

func newError(code int, msg string) error {
	return newStatusError(code, defaultStatus(code), msg)
}

func newStatusError(code, status int, msg string) error {
	err := errors.New(msg)
	errorCodeMap[err] = code
	httpStatusMap[err] = status
	return err
}

func defaultStatus(code int) int {
	switch {
	case code == 0:
		return http.StatusOK
	case code >= 400 && code < 600:
		return code
	}
	return http.StatusInternalServerError
}

// HTTPStatus 返回错误对应的 HTTP 状态码，未登记的错误按 500 处理
func HTTPStatus(err error) int {
	if s, ok := httpStatusMap[err]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// ErrorCode 返回错误的业务码
func ErrorCode(err error) int {
	return errorCodeMap[err]
}

// TransitionError 状态流转被拒绝
type TransitionError struct {
	From   string
	To     string
	Reason string
}

func (e *TransitionError) Error() string {
	return e.Reason
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}
