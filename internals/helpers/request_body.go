package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// strictJSON menolak field yang tidak dikenal di body request.
var strictJSON = sonic.Config{
	DisallowUnknownFields: true,
	ValidateString:        true,
}.Froze()

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// pakai nama json supaya key di "errors" sama dengan key di body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationError membawa pesan per field (dikirim sebagai 400 VALIDATION_ERROR).
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msgs := range e.Fields {
		parts = append(parts, f+": "+strings.Join(msgs, ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// BindJSON = decode strict (sonic) + validasi struct (validator v10).
func BindJSON(c *fiber.Ctx, dst any) error {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Body request kosong")
	}
	if err := strictJSON.Unmarshal(body, dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid: "+err.Error())
	}
	return ValidateStruct(dst)
}

func ValidateStruct(dst any) error {
	if err := validate.Struct(dst); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return &ValidationError{Fields: formatValidationErrors(ve)}
		}
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	return nil
}

// JsonBindError memilih envelope yang cocok untuk error dari BindJSON.
func JsonBindError(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return JsonValidationError(c, ve.Fields)
	}
	return FromFiberError(c, err)
}

func formatValidationErrors(ve validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		// Namespace tanpa nama struct root, mis. "attendees[0].name"
		key := fe.Namespace()
		if i := strings.IndexByte(key, '.'); i >= 0 {
			key = key[i+1:]
		}
		var msg string
		switch fe.Tag() {
		case "required", "required_if", "required_without":
			msg = fe.Field() + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = fe.Field() + " harus minimal " + fe.Param() + " karakter."
		case "max":
			msg = fe.Field() + " harus kurang dari " + fe.Param() + " karakter."
		case "oneof":
			msg = fe.Field() + " harus salah satu dari " + fe.Param() + "."
		case "uuid", "uuid4":
			msg = fe.Field() + " harus UUID yang valid."
		case "datetime":
			msg = fe.Field() + " harus berformat " + fe.Param() + "."
		default:
			msg = "Format tidak valid."
		}
		out[key] = append(out[key], msg)
	}
	return out
}
