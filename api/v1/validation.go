package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HandleBindError 绑定/校验失败时返回 400，data 为字段级错误
func HandleBindError(ctx *gin.Context, err error) {
	HandleError(ctx, http.StatusBadRequest, ErrBadRequest, FieldErrors(err))
}

// FieldErrors 将 validator 错误转换为 字段 → 原因
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		if err != nil {
			out["body"] = err.Error()
		}
		return out
	}
	for _, fe := range ve {
		out[fieldName(fe)] = describe(fe)
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "primary_in_regions":
		return "must be one of the regions"
	case "unique":
		return "must not contain duplicates"
	}
	return "failed on " + fe.Tag()
}
