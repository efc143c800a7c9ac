package validator

import (
	"log"
	"net/url"
	"strings"

	"vinixport_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': одна из известных ролей
	mustRegister("is-user-role", validateUserRole)

	// 'is-signup-role': роль, доступная при регистрации (admin создается только сидом)
	mustRegister("is-signup-role", validateSignupRole)

	// 'image-ref': http(s) URL или data:image/...;base64,...
	mustRegister("image-ref", validateImageRef)

	// 'http-url': абсолютный http(s) URL
	mustRegister("http-url", validateHTTPURL)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}
	return models.UserRole(value).Valid()
}

func validateSignupRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleMentee, models.UserRoleMentor:
		return true
	case models.UserRoleAdmin:
		return false
	default:
		return false
	}
}

// IsDataURL сообщает, похожа ли строка на data URL с изображением
func IsDataURL(value string) bool {
	return strings.HasPrefix(value, "data:image/") && strings.Contains(value, ";base64,")
}

func IsHTTPURL(value string) bool {
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validateImageRef(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return IsDataURL(value) || IsHTTPURL(value)
}

func validateHTTPURL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return IsHTTPURL(value)
}
