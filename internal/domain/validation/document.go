package validation

import (
	"errors"
	"strings"
)

var (
	ErrInvalidDocument = errors.New("invalid document")
	ErrInvalidPhone    = errors.New("invalid phone")
)

// OnlyDigits strips everything but 0-9 from masked input.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateDocument checks the checksum of a CPF (tipo F) or CNPJ (tipo J).
// The input may be masked; tipo follows the pessoa type of the customer.
func ValidateDocument(tipo string, doc string) error {
	digits := OnlyDigits(doc)
	switch tipo {
	case "J":
		if !validCNPJ(digits) {
			return ErrInvalidDocument
		}
	default:
		if !validCPF(digits) {
			return ErrInvalidDocument
		}
	}
	return nil
}

// ValidateCelular checks a Brazilian mobile number: masked form must be at
// least 14 chars ("(DD) NNNN-NNNN"), digits 10 or 11 with a valid area code.
func ValidateCelular(celular string) error {
	if len(celular) < 14 {
		return ErrInvalidPhone
	}
	digits := OnlyDigits(celular)
	if len(digits) < 10 || len(digits) > 11 {
		return ErrInvalidPhone
	}
	if digits[0] == '0' {
		return ErrInvalidPhone
	}
	return nil
}

// NormalizeCEP returns the 8-digit postal code, or "" when the input cannot
// be a CEP.
func NormalizeCEP(cep string) string {
	digits := OnlyDigits(cep)
	if len(digits) != 8 {
		return ""
	}
	return digits
}

func validCPF(d string) bool {
	if len(d) != 11 || allSame(d) {
		return false
	}
	for _, pos := range []int{9, 10} {
		sum := 0
		for i := 0; i < pos; i++ {
			sum += int(d[i]-'0') * (pos + 1 - i)
		}
		dv := (sum * 10) % 11
		if dv == 10 {
			dv = 0
		}
		if dv != int(d[pos]-'0') {
			return false
		}
	}
	return true
}

func validCNPJ(d string) bool {
	if len(d) != 14 || allSame(d) {
		return false
	}
	weights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	for _, pos := range []int{12, 13} {
		sum := 0
		for i := 0; i < pos; i++ {
			sum += int(d[i]-'0') * weights[len(weights)-pos+i]
		}
		dv := sum % 11
		if dv < 2 {
			dv = 0
		} else {
			dv = 11 - dv
		}
		if dv != int(d[pos]-'0') {
			return false
		}
	}
	return true
}

func allSame(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
