// Package prompt implements the interactive console prompts. Each prompt
// re-asks until the input passes the same validation the service applies, so
// the happy path never round-trips an invalid value.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var stdin = bufio.NewReader(os.Stdin)

// Line prints the label and returns one trimmed line of input.
func Line(label string) string {
	fmt.Print(label)
	text, _ := stdin.ReadString('\n')
	return strings.TrimSpace(text)
}

// Nombre asks for a person name until it is non-empty and not purely numeric.
func Nombre(label string) string {
	for {
		nombre := Line(label)
		if nombre != "" && !allDigits(nombre) {
			return nombre
		}
		color.Yellow("Has escrito un número o no has escrito nada.")
	}
}

// Edad asks for an age until it parses as a positive integer.
func Edad(label string) int {
	for {
		edad, err := strconv.Atoi(Line(label))
		if err == nil && edad > 0 {
			return edad
		}
		color.Yellow("No has introducido un número válido.")
	}
}

// Ciudad asks for a city until it is non-empty and not purely numeric.
func Ciudad(label string) string {
	for {
		ciudad := Line(label)
		if ciudad != "" && !allDigits(ciudad) {
			return ciudad
		}
		color.Yellow("Has escrito un número o no has escrito nada.")
	}
}

// Confirm asks a yes/no question, "s" confirming.
func Confirm(label string) bool {
	answer := strings.ToLower(Line(label + " (s/n): "))
	return answer == "s" || answer == "si"
}

// Password reads a password without echoing it.
func Password(label string) (string, error) {
	fmt.Print(label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

// Index asks for a number between 1 and max, returning the 0-based choice.
func Index(label string, max int) int {
	for {
		n, err := strconv.Atoi(Line(label))
		if err == nil && n >= 1 && n <= max {
			return n - 1
		}
		color.Yellow("Introduce un número entre 1 y %d.", max)
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
