// file: internals/helpers/validation.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate: satu instance validator untuk semua DTO.
func Validate(s any) error {
	return validate.Struct(s)
}

// ValidationMap mengubah validator.ValidationErrors → map field → pesan,
// dipakai bersama JsonValidationError.
func ValidationMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		out[field] = append(out[field], fe.Tag())
	}
	return out
}
