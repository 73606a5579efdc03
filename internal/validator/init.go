package validator

import (
	"errors"
	"reflect"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := registerCustom(validate); err != nil {
		panic(err)
	}
}

// Struct validates s against its `validate` struct tags.
func Struct(s any) error {
	return validate.Struct(s)
}

var ginOnce sync.Once

// RegisterGin installs the custom validations on gin's binding validator so `binding` tags can use them.
func RegisterGin() error {
	var err error
	ginOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding engine is not a go-playground validator")
			return
		}
		err = registerCustom(v)
	})
	return err
}

func registerCustom(v *validator.Validate) error {
	return v.RegisterValidation("maxbytes", maxBytes)
}

// maxBytes implements `maxbytes=N`: a string field holds at most N bytes. The built-in max counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return field.Len() <= limit
}
