package checkout

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

type PaymentMethod string

const (
	PaymentSBP    PaymentMethod = "sbp"
	PaymentCrypto PaymentMethod = "crypto"
)

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentSBP:
		return "СБП"
	case PaymentCrypto:
		return "Криптовалюта"
	}
	return string(m)
}

type Form struct {
	FullName      string        `json:"fullName"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	ZipCode       string        `json:"zipCode"`
	Comment       string        `json:"comment"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// Normalize applies the storefront default payment method.
func (f Form) Normalize() Form {
	if f.PaymentMethod == "" {
		f.PaymentMethod = PaymentSBP
	}
	return f
}

var ErrValidation = errors.New("validation")

// ValidationError carries one message per rejected form field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid order form: " + strings.Join(keys, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

const (
	msgFullName     = "Пожалуйста, укажите ФИО"
	msgEmail        = "Пожалуйста, укажите email"
	msgEmailInvalid = "Пожалуйста, укажите корректный email"
	msgPhone        = "Пожалуйста, укажите номер телефона"
	msgAddress      = "Пожалуйста, укажите адрес доставки"
	msgCity         = "Пожалуйста, укажите город"
	msgZipCode      = "Пожалуйста, укажите почтовый индекс"
	msgPayment      = "Пожалуйста, выберите способ оплаты"
)

// Validate returns field name to message for every problem in f. The map is
// empty when the form can be submitted.
func Validate(f Form) map[string]string {
	errs := map[string]string{}

	required := []struct {
		field, value, msg string
	}{
		{"fullName", f.FullName, msgFullName},
		{"phone", f.Phone, msgPhone},
		{"address", f.Address, msgAddress},
		{"city", f.City, msgCity},
		{"zipCode", f.ZipCode, msgZipCode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs[r.field] = r.msg
		}
	}

	switch {
	case strings.TrimSpace(f.Email) == "":
		errs["email"] = msgEmail
	case !emailPattern.MatchString(f.Email):
		errs["email"] = msgEmailInvalid
	}

	switch f.Normalize().PaymentMethod {
	case PaymentSBP, PaymentCrypto:
	default:
		errs["paymentMethod"] = msgPayment
	}

	return errs
}
