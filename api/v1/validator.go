package v1

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators 向 gin 的校验引擎注册自定义规则
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// 字段级错误使用 json 名称
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("primary_in_regions", primaryInRegions)
	})
}

// primaryInRegions 要求字段值出现在同级的 Regions 列表中
func primaryInRegions(fl validator.FieldLevel) bool {
	primary := fl.Field().String()
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}
	regions := parent.FieldByName("Regions")
	if !regions.IsValid() || regions.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < regions.Len(); i++ {
		if regions.Index(i).String() == primary {
			return true
		}
	}
	return false
}
