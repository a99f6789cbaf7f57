package ficha

import (
	"fmt"
	"unicode"
)

// validate rejects a ficha before it reaches the backing file: nombre and
// ciudad must carry non-digit content, edad must be a positive integer.
func validate(nombre string, edad int, ciudad string) error {
	if nombre == "" || allDigits(nombre) {
		return fmt.Errorf("%w: nombre must be a non-empty, non-numeric string", ErrInvalid)
	}
	if edad <= 0 {
		return fmt.Errorf("%w: edad must be a positive integer", ErrInvalid)
	}
	if ciudad == "" || allDigits(ciudad) {
		return fmt.Errorf("%w: ciudad must be a non-empty, non-numeric string", ErrInvalid)
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
