package service

import (
	"testing"
	"time"

	"payboard/internal/contract"
	domain "payboard/internal/domain/sqlite"
	"payboard/internal/domain/sqlite/repository"
	"payboard/internal/utils"
	"payboard/internal/utils/apierror"
	"payboard/internal/utils/validators"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testJWTSecret = []byte("test-secret")

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, domain.Migrate(db))
	return db
}

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("hasupper", validators.HasUpper))
	require.NoError(t, validate.RegisterValidation("haslower", validators.HasLower))
	require.NoError(t, validate.RegisterValidation("hasdigit", validators.HasDigit))
	require.NoError(t, validate.RegisterValidation("hasspecial", validators.HasSpecial))
	require.NoError(t, validate.RegisterValidation("nospaces", validators.NoWhiteSpaces))
	return validate
}

func newUserTestService(t *testing.T) *UserService {
	t.Helper()

	db := newTestDB(t)
	return NewUserService(repository.NewUserRepository(db), newTestValidator(t), testJWTSecret)
}

func validCreateUser() *contract.CreateUserRequest {
	return &contract.CreateUserRequest{
		Username:  "ana.lima",
		Email:     "ana@example.com",
		Password:  "Sup3r@Secret",
		FirstName: "Ana",
		LastName:  "Lima",
		IsActive:  true,
	}
}

func TestUserCreateHashesPassword(t *testing.T) {
	s := newUserTestService(t)

	user, apierr := s.Create(validCreateUser())
	require.Nil(t, apierr)
	assert.Positive(t, user.ID)
	assert.NotEqual(t, "Sup3r@Secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Sup3r@Secret")))
	assert.NotEmpty(t, user.OTPSecret)
	assert.Positive(t, user.DateJoined)
}

func TestUserCreateRejectsWeakPassword(t *testing.T) {
	s := newUserTestService(t)

	req := validCreateUser()
	req.Password = "alllowercase"

	_, apierr := s.Create(req)
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())

	structured, ok := apierr.(*apierror.StructuredError)
	require.True(t, ok)
	assert.Contains(t, structured.Errors, "password")
}

func TestUserCreateConflicts(t *testing.T) {
	s := newUserTestService(t)

	_, apierr := s.Create(validCreateUser())
	require.Nil(t, apierr)

	req := validCreateUser()
	req.Username = "other"
	_, apierr = s.Create(req)
	assert.Equal(t, apierror.EmailTakenError, apierr)

	req = validCreateUser()
	req.Email = "other@example.com"
	_, apierr = s.Create(req)
	assert.Equal(t, apierror.UsernameTakenError, apierr)
}

func TestLogin(t *testing.T) {
	s := newUserTestService(t)

	user, apierr := s.Create(validCreateUser())
	require.Nil(t, apierr)

	code, err := totp.GenerateCode(user.OTPSecret, time.Now())
	require.NoError(t, err)

	resp, apierr := s.Login(&contract.LoginRequest{
		Username: "ana.lima",
		Password: "Sup3r@Secret",
		OTP:      code,
	})
	require.Nil(t, apierr)
	require.NotEmpty(t, resp.Token)

	data, err := utils.ValidateToken(testJWTSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, data.UserID)

	// Login stamps last_login.
	fresh, apierr := s.GetByID(user.ID)
	require.Nil(t, apierr)
	require.NotNil(t, fresh.LastLogin)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newUserTestService(t)

	_, apierr := s.Create(validCreateUser())
	require.Nil(t, apierr)

	_, apierr = s.Login(&contract.LoginRequest{Username: "ana.lima", Password: "Wr0ng@Secret"})
	assert.Equal(t, apierror.InvalidCredentialsError, apierr)
}

func TestLoginUnknownUser(t *testing.T) {
	s := newUserTestService(t)

	_, apierr := s.Login(&contract.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.Equal(t, apierror.InvalidCredentialsError, apierr)
}

func TestLoginInactiveUser(t *testing.T) {
	s := newUserTestService(t)

	req := validCreateUser()
	req.IsActive = false
	_, apierr := s.Create(req)
	require.Nil(t, apierr)

	_, apierr = s.Login(&contract.LoginRequest{Username: "ana.lima", Password: "Sup3r@Secret"})
	assert.Equal(t, apierror.InvalidCredentialsError, apierr)
}

func TestLoginRequiresOTP(t *testing.T) {
	s := newUserTestService(t)

	_, apierr := s.Create(validCreateUser())
	require.Nil(t, apierr)

	_, apierr = s.Login(&contract.LoginRequest{Username: "ana.lima", Password: "Sup3r@Secret"})
	assert.Equal(t, apierror.InvalidOTPError, apierr)

	_, apierr = s.Login(&contract.LoginRequest{
		Username: "ana.lima",
		Password: "Sup3r@Secret",
		OTP:      "000000",
	})
	assert.Equal(t, apierror.InvalidOTPError, apierr)
}

func TestUpdatePassword(t *testing.T) {
	s := newUserTestService(t)

	user, apierr := s.Create(validCreateUser())
	require.Nil(t, apierr)

	updated, apierr := s.UpdatePassword(user.ID, &contract.UpdatePasswordRequest{Password: "N3w@Password"})
	require.Nil(t, apierr)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("N3w@Password")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("Sup3r@Secret")))
}

func TestUserUpdateMissing(t *testing.T) {
	s := newUserTestService(t)

	username := "ghost"
	_, apierr := s.Update(9999, &contract.UpdateUserRequest{Username: &username})
	assert.Equal(t, apierror.NotFoundError, apierr)
}
