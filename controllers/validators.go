package controllers

import (
	"fmt"
	"sync"

	"civicreporter/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

var enumValidators = map[string]validator.Func{
	"issue_category": func(fl validator.FieldLevel) bool {
		return models.IssueCategory(fl.Field().String()).Valid()
	},
	"issue_status": func(fl validator.FieldLevel) bool {
		return models.IssueStatus(fl.Field().String()).Valid()
	},
	"issue_priority": func(fl validator.FieldLevel) bool {
		return models.IssuePriority(fl.Field().String()).Valid()
	},
}

// RegisterValidators adds the enum tags used in request bindings. It panics
// at startup if gin's engine cannot take them.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("controllers: unexpected validator engine %T", binding.Validator.Engine()))
		}
		for tag, fn := range enumValidators {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("controllers: register %s validator: %v", tag, err))
			}
		}
	})
}
