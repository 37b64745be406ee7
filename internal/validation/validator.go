package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"pixbank/internal/models"
)

// Validator wraps the go-playground validator with the domain rules the
// API uses: Brazilian tax ids, PIX keys and transfer channels.
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a validator instance with the custom rules registered
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("cpf_cnpj", validateCpfCnpj)
	_ = v.RegisterValidation("pix_key", validatePixKey)
	_ = v.RegisterValidation("channel", validateChannel)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

var (
	cpfCnpjRegex  = regexp.MustCompile(`^\d{11}$|^\d{14}$`)
	pixPhoneRegex = regexp.MustCompile(`^\+?\d{10,14}$`)
	pixEmailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	pixUUIDRegex  = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// validateCpfCnpj accepts a bare 11-digit CPF or 14-digit CNPJ. Check
// digits are not verified; the demo data is synthetic.
func validateCpfCnpj(fl validator.FieldLevel) bool {
	digits := strings.NewReplacer(".", "", "-", "", "/", "").Replace(fl.Field().String())
	return cpfCnpjRegex.MatchString(digits)
}

// validatePixKey accepts the four key shapes: email, phone, random key
// (uuid) or a bare CPF/CNPJ.
func validatePixKey(fl validator.FieldLevel) bool {
	key := fl.Field().String()
	if key == "" || len(key) > 140 {
		return false
	}
	return pixEmailRegex.MatchString(key) ||
		pixPhoneRegex.MatchString(key) ||
		pixUUIDRegex.MatchString(strings.ToLower(key)) ||
		cpfCnpjRegex.MatchString(key)
}

func validateChannel(fl validator.FieldLevel) bool {
	return models.IsValidChannel(fl.Field().String())
}
