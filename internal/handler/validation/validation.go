package validation

import (
	"errors"
	"sync"
	"time"

	"hotel-booking/internal/domain/money"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// Register adds the custom tags to gin's validator. Safe to call more than once.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		if err = v.RegisterValidation("dateonly", isDateOnly); err != nil {
			return
		}
		err = v.RegisterValidation("amount", isAmount)
	})
	return err
}

// dateonly: a YYYY-MM-DD calendar date.
func isDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

// amount: a non-negative decimal with at most two fractional digits.
func isAmount(fl validator.FieldLevel) bool {
	_, err := money.Parse(fl.Field().String())
	return err == nil
}

// FieldErrors flattens binding errors into field -> rule for the error envelope detail.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
