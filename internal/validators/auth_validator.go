package validators

import (
	"log"
	"regexp"
	"taxOffice/internal/errs"
	"taxOffice/internal/models"
)

func ValidateUser(user *models.User) []error {
	var errors []error
	if user == nil {
		errors = append(errors, errs.ErrInvalidUser)
		return errors
	}

	if user.Email == "" || !ValidateEmail(user.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}

	if !ValidatePassword(user.Password) {
		errors = append(errors, errs.ErrInvalidPassword)
	}

	if user.FirstName == "" || len(user.FirstName) < 2 {
		errors = append(errors, errs.ErrFirstName)
	}

	if user.LastName == "" || len(user.LastName) < 2 {
		errors = append(errors, errs.ErrLastName)
	}

	if user.Role != "" && !user.Role.IsValid() {
		errors = append(errors, errs.ErrInvalidRole)
	}
	return errors
}

func ValidateEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	regex, err := regexp.Compile(pattern)
	if err != nil {
		log.Println("Error compiling regular expression:", err)
		return false
	}
	return regex.MatchString(email)
}

func ValidatePassword(password string) bool {
	// At least 8 characters of letters, digits and the allowed
	// special characters.
	pattern := `^(?:[0-9a-zA-Z@#$%^&+=!]{8,})(?:(.*[0-9])?(.*[a-z])?(.*[A-Z])?(.*[@#$%^&+=!])?)$`

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}

	return regex.MatchString(password)
}
