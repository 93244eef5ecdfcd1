// Package validator registers the custom binding rules used by request DTOs
// on gin's go-playground validator engine.
package validator

import (
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagPhone accepts Vietnamese phone numbers: 0 or +84 followed by 9 or 10 digits.
// Spaces, dots and dashes between digits are ignored.
const TagPhone = "phone"

var (
	phonePattern = regexp.MustCompile(`^(?:\+84|0)\d{9,10}$`)
	phoneCleaner = strings.NewReplacer(" ", "", ".", "", "-", "")

	registerOnce sync.Once
	registerErr  error
)

// ValidPhone reports whether s is a Vietnamese phone number
func ValidPhone(s string) bool {
	return phonePattern.MatchString(phoneCleaner.Replace(s))
}

func phone(fl validator.FieldLevel) bool {
	return ValidPhone(fl.Field().String())
}

// Register installs the custom rules on gin's default validator. It is safe
// to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = v.RegisterValidation(TagPhone, phone)
	})
	return registerErr
}
