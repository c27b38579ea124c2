package validate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/pkg/request"
	"talentsync/pkg/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterValidators 將 shift / role / leavefilter 規則註冊到 gin 的 validator；
// shift 依 taxonomy 判斷，taxonomy 換檔後需重新註冊
func RegisterValidators(tax *scheduling.Taxonomy) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return Register(v, tax)
}

func Register(v *validator.Validate, tax *scheduling.Taxonomy) error {
	if err := v.RegisterValidation("shift", func(fl validator.FieldLevel) bool {
		_, ok := tax.Shift(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, ok := scheduling.ParseRole(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}
	return v.RegisterValidation("leavefilter", func(fl validator.FieldLevel) bool {
		return scheduling.LeaveFilter(fl.Field().String()).Valid()
	})
}

// 輸出格式化的 validator error（欄位 json 名/型別/規則列表）
func ValidationErrorResponse(obj interface{}, err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var b strings.Builder
		b.WriteString("Validation error:\n")
		for _, fe := range errs {
			field := jsonFieldName(obj, fe.StructField())
			ftype := fieldType(obj, fe.StructField())
			format := getFieldFormat(obj, fe.StructField())
			b.WriteString(fmt.Sprintf(" - Field \"%s\" (type: %s) failed the '%s' validation (rules: %v)\n",
				field, ftype, fe.Tag(), format))
		}
		return b.String()
	}
	return fmt.Sprintf("Validation error: %s", err.Error())
}

func jsonFieldName(obj interface{}, structField string) string {
	t := structType(obj)
	if f, ok := t.FieldByName(structField); ok {
		for _, key := range []string{"json", "form"} {
			tag := f.Tag.Get(key)
			if tag != "" && tag != "-" {
				return strings.Split(tag, ",")[0]
			}
		}
	}
	return structField
}

func fieldType(obj interface{}, structField string) string {
	if f, ok := structType(obj).FieldByName(structField); ok {
		return f.Type.String()
	}
	return ""
}

func getFieldFormat(obj interface{}, structField string) []string {
	if f, ok := structType(obj).FieldByName(structField); ok {
		tag := f.Tag.Get("binding")
		if tag != "" {
			return strings.Split(tag, ",")
		}
	}
	return nil
}

func structType(obj interface{}) reflect.Type {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t
}

func ParseObjectID(c *gin.Context, key string) (id primitive.ObjectID, cause error, responseErr error) {
	id, err := primitive.ObjectIDFromHex(c.Param(key))
	if err != nil {
		return primitive.NilObjectID, err, cErr.ValidatePathParamsErr("invalid " + key)
	}
	return id, nil, nil
}

func BindAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindJSON(req); err != nil {
		return err, bindError(req, err)
	}
	return nil, nil
}

func BindQuery(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindQuery(req); err != nil {
		return err, bindError(req, err)
	}
	return nil, nil
}

// BindBody 解碼並驗證已讀出的 body；陣列會逐筆驗證
func BindBody(body []byte, req any) (cause error, responseErr error) {
	if err := binding.JSON.BindBody(body, req); err != nil {
		return err, bindError(req, err)
	}
	return nil, nil
}

// 有自訂訊息的 DTO 回傳第一則訊息，其餘列出欄位與規則
func bindError(req any, err error) *cErr.Error {
	if _, ok := req.(request.Validator); ok {
		if _, isValidation := err.(validator.ValidationErrors); isValidation {
			return request.GetError(req, err)
		}
	}
	return cErr.ValidateErr(ValidationErrorResponse(req, err))
}

func GetIntQuery(c *gin.Context, key string, defaultVal int) (int, error) {
	if v := c.Query(key); v != "" {
		return strconv.Atoi(v)
	}
	return defaultVal, nil
}
