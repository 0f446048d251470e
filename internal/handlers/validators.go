package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

var registerOnce sync.Once

// RegisterValidators adds the domain binding tags to gin's validator.
// It is safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("vatrate", func(fl validator.FieldLevel) bool {
			return domain.IsAllowedVATRate(int(fl.Field().Int()))
		})
		_ = v.RegisterValidation("clientstatus", func(fl validator.FieldLevel) bool {
			return domain.ClientStatus(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("trainingcategory", func(fl validator.FieldLevel) bool {
			return domain.TrainingCategory(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("quotestatus", func(fl validator.FieldLevel) bool {
			return domain.QuoteStatus(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("invoicestatus", func(fl validator.FieldLevel) bool {
			return domain.InvoiceStatus(fl.Field().String()).IsValid()
		})
	})
}
