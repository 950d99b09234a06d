package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/linkdesk-io/linkdesk/internal/shared/utils"
)

// RegisterValidators installs the custom binding validations used by the
// request structs in this package. Call once before routes are set up.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("domainname", func(fl validator.FieldLevel) bool {
		return utils.IsValidDomainName(fl.Field().String())
	})
}
