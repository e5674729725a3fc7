package rest

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Problem aliases are short URL-safe slugs on the platform.
var aliasPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,32}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("problem_alias", func(fl validator.FieldLevel) bool {
			return aliasPattern.MatchString(fl.Field().String())
		})
	}
}
