package services

import (
	"taxOffice/configs"
	"taxOffice/internal/enums"
	"taxOffice/internal/errs"
	"taxOffice/internal/models"
	"taxOffice/internal/repositories"
	"taxOffice/internal/utils"
	"taxOffice/internal/validators"
	"time"
)

type AuthenticationService struct {
	authRepo *repositories.AuthenticationRepository
	config   *configs.Config
}

func NewAuthenticationService(
	authRepo *repositories.AuthenticationRepository,
	config *configs.Config,
) *AuthenticationService {
	return &AuthenticationService{
		authRepo: authRepo,
		config:   config,
	}
}

func (as *AuthenticationService) Register(user *models.User) (*models.User, []error) {
	var errors []error
	if as.CheckIfUserExists(user.Email) {
		errors = append(errors, errs.ErrUserAlreadyExists)
		return nil, errors
	}
	validationErrs := validators.ValidateUser(user)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}
	password, err := utils.HashPassword(user.Password)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	user.PasswordHash = password
	if user.Role == "" {
		user.Role = enums.ROLE_CLIENT
	}
	return as.authRepo.CreateUser(user)
}

func (as *AuthenticationService) Login(loginData *models.LoginRequestBody) (*models.LoginResponse, []error) {
	var errors []error

	user, loginErrs := as.authRepo.Login(loginData)
	if len(loginErrs) > 0 {
		errors = append(errors, loginErrs...)
		return nil, errors
	}

	expiration := time.Now().Add(time.Duration(as.config.Viper.GetInt("jwt.expiration_time")) * time.Second)
	token, jwtErr := utils.CreateJwtToken(
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Role,
		utils.GetJwtKey(),
		expiration,
	)
	if jwtErr != nil {
		errors = append(errors, jwtErr)
		return nil, errors
	}

	return &models.LoginResponse{
		Token: token,
		User:  user.ToProfileResponse(),
	}, nil
}

// CreateSocketToken mints the short-lived credential a client presents
// when opening the notification socket. Same claims shape and signing
// secret as the session token.
func (as *AuthenticationService) CreateSocketToken(claims *models.Claims) (*models.SocketTokenResponse, error) {
	expiresIn := as.config.Viper.GetInt("jwt.socket_token_expiration_time")
	expiration := time.Now().Add(time.Duration(expiresIn) * time.Second)
	token, err := utils.CreateJwtToken(
		claims.ID,
		claims.Email,
		claims.FirstName,
		claims.LastName,
		claims.Role,
		utils.GetJwtKey(),
		expiration,
	)
	if err != nil {
		return nil, err
	}
	return &models.SocketTokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

func (as *AuthenticationService) CheckIfUserExists(email string) bool {
	return as.authRepo.CheckIfUserExists(email) != nil
}

func (as *AuthenticationService) GetUserById(userId uint) (*models.User, error) {
	return as.authRepo.GetUserById(userId)
}

func (as *AuthenticationService) SetUserOnlineStatus(userId uint, isOnline bool) (bool, *time.Time, error) {
	return as.authRepo.SetUserOnlineStatus(userId, isOnline)
}
