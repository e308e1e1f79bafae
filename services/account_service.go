package services

import (
	"strings"

	"github.com/avalero/blog-backend/auth"
	"github.com/avalero/blog-backend/database"
	"github.com/avalero/blog-backend/errs"
	"github.com/avalero/blog-backend/models"
)

// AccountService owns registration, login/logout and account management for
// both API surfaces.
type AccountService struct {
	db   database.Database
	auth *auth.Service
}

func NewAccountService(db database.Database, authService *auth.Service) *AccountService {
	return &AccountService{db: db, auth: authService}
}

func (s *AccountService) List() ([]*models.User, error) {
	users, err := s.db.UserRepo().FindAll()
	return users, errs.Wrap(err, "Error retrieving users")
}

func (s *AccountService) Get(id uint) (*models.User, error) {
	user, err := s.db.UserRepo().FindByID(id)
	if err != nil {
		return nil, errs.Wrap(err, "Error retrieving user")
	}
	if user == nil {
		return nil, errs.NewNotFoundError("User not found")
	}
	return user, nil
}

// Register creates an account and logs it in. Email is optional; when
// given it must be unused.
func (s *AccountService) Register(username, password, passwordConfirm string, email *string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || passwordConfirm == "" {
		return nil, "", errs.NewBadRequestError("All fields are required")
	}
	if password != passwordConfirm {
		return nil, "", errs.NewBadRequestErrorWithField("Passwords do not match", "password_confirm")
	}

	existing, err := s.db.UserRepo().FindByUsername(username)
	if err != nil {
		return nil, "", errs.Wrap(err, "Error creating user")
	}
	if existing != nil {
		return nil, "", errs.NewBadRequestErrorWithField("Username already exists", "username")
	}
	if email != nil && strings.TrimSpace(*email) != "" {
		taken, err := s.db.UserRepo().ExistsByEmail(strings.TrimSpace(*email))
		if err != nil {
			return nil, "", errs.Wrap(err, "Error creating user")
		}
		if taken {
			return nil, "", errs.NewBadRequestErrorWithField("Email already exists", "email")
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", errs.Wrap(err, "Error creating user")
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
	}
	if email != nil && strings.TrimSpace(*email) != "" {
		trimmed := strings.TrimSpace(*email)
		user.Email = &trimmed
	}
	if err := s.db.UserRepo().Add(user); err != nil {
		return nil, "", errs.Wrap(err, "Error creating user")
	}

	token, err := s.auth.IssueToken(user)
	if err != nil {
		return nil, "", errs.Wrap(err, "Error creating user")
	}
	return user, token, nil
}

// Login verifies credentials and returns the user's token, minting one if
// they have none.
func (s *AccountService) Login(username, password string) (*models.User, string, error) {
	user, err := s.auth.Authenticate(username, password)
	if err != nil {
		return nil, "", errs.Wrap(err, "Error during login")
	}
	if user == nil {
		return nil, "", errs.NewInvalidCredentialsError("Invalid credentials")
	}

	token, err := s.auth.IssueToken(user)
	if err != nil {
		return nil, "", errs.Wrap(err, "Error during login")
	}
	return user, token, nil
}

// Logout revokes the actor's token. Logging out without a stored token is
// not an error.
func (s *AccountService) Logout(actor *models.User) error {
	if actor == nil {
		return errs.NewAuthenticationRequiredError("You are not authenticated")
	}
	_, err := s.auth.RevokeToken(actor)
	return errs.Wrap(err, "Error during logout")
}

// Me returns the acting user's own account.
func (s *AccountService) Me(actor *models.User) (*models.User, error) {
	if actor == nil {
		return nil, errs.NewAuthenticationRequiredError("You are not authenticated")
	}
	return actor, nil
}

// Delete removes an account: self-delete, or any account when the actor is
// a superuser. Cascades to the owned blog and its posts.
func (s *AccountService) Delete(actor *models.User, id uint) (*models.User, error) {
	if actor == nil {
		return nil, errs.NewAuthenticationRequiredError("You are not authenticated")
	}

	target, err := s.db.UserRepo().FindByID(id)
	if err != nil {
		return nil, errs.Wrap(err, "Error deleting user")
	}
	if target == nil {
		return nil, errs.NewNotFoundError("User not found")
	}
	if !actor.IsSuperuser && actor.ID != target.ID {
		return nil, errs.NewPermissionDeniedError("You are not allowed to delete this user")
	}

	if err := s.db.UserRepo().Delete(target.ID); err != nil {
		return nil, errs.Wrap(err, "Error deleting user")
	}
	return target, nil
}

func (s *AccountService) UpdatePassword(actor *models.User, newPassword, confirmPassword string) (*models.User, error) {
	if newPassword != confirmPassword {
		return nil, errs.NewInvalidCredentialsError("Passwords do not match")
	}
	if actor == nil {
		return nil, errs.NewAuthenticationRequiredError("You are not authenticated")
	}
	if newPassword == "" {
		return nil, errs.NewBadRequestError("All fields are required")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return nil, errs.Wrap(err, "Error updating password")
	}
	actor.PasswordHash = hash
	if err := s.db.UserRepo().Update(actor); err != nil {
		return nil, errs.Wrap(err, "Error updating password")
	}
	return actor, nil
}
