package validator

import (
	"fmt"

	playground "github.com/go-playground/validator/v10"
)

// Validator validates structs using `validate` tags. gin covers request
// binding; this wrapper serves payloads that arrive outside HTTP, such as
// broker messages.
type Validator struct {
	v *playground.Validate
}

func New() *Validator {
	return &Validator{v: playground.New()}
}

func (v *Validator) Validate(obj interface{}) error {
	if err := v.v.Struct(obj); err != nil {
		if errs, ok := err.(playground.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("field %s failed validation on %q", e.Field(), e.Tag())
		}
		return err
	}
	return nil
}
