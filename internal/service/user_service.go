package service

import (
	"errors"

	"payboard/internal/contract"
	"payboard/internal/domain/entity"
	"payboard/internal/domain/sqlite/repository"
	"payboard/internal/utils"
	"payboard/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const totpIssuer = "payboard"

type UserRepository interface {
	GetPaginated(find string, page, pageSize int) (*repository.Page[entity.User], error)
	GetByID(id int32) (*entity.User, error)
	FindByEmailOrUsername(email, username string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	Create(u *entity.User) (*entity.User, error)
	Update(id int32, req *contract.UpdateUserRequest) (*entity.User, error)
	UpdatePassword(id int32, hash string) (*entity.User, error)
	UpdateLastLogin(id int32, at int64) error
	Delete(id int32) error
}

type UserService struct {
	Repo      UserRepository
	Validate  *validator.Validate
	JWTSecret []byte
}

func NewUserService(repo UserRepository, validate *validator.Validate, jwtSecret []byte) *UserService {
	return &UserService{Repo: repo, Validate: validate, JWTSecret: jwtSecret}
}

func (s *UserService) GetPaginated(find string, page, pageSize int) (*repository.Page[entity.User], apierror.ErrorResponse) {
	result, err := s.Repo.GetPaginated(find, page, pageSize)
	if err != nil {
		return nil, mapStoreError("failed to list users", err)
	}
	return result, nil
}

func (s *UserService) GetByID(id int32) (*entity.User, apierror.ErrorResponse) {
	user, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, mapStoreError("failed to fetch user", err)
	}
	return user, nil
}

// Create hashes the caller-supplied password and provisions a fresh TOTP
// secret. The unique indexes on email and username are the authoritative
// conflict check; the lookup beforehand only picks the friendlier message.
func (s *UserService) Create(req *contract.CreateUserRequest) (*entity.User, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	existing, err := s.Repo.FindByEmailOrUsername(req.Email, req.Username)
	if err != nil {
		return nil, mapStoreError("failed to check user uniqueness", err)
	}
	if existing != nil {
		if existing.Email == req.Email {
			return nil, apierror.EmailTakenError
		}
		return nil, apierror.UsernameTakenError
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: req.Email,
	})
	if err != nil {
		log.Errorf("failed to generate otp secret: %v", err)
		return nil, apierror.InternalServerError
	}

	user, err := s.Repo.Create(&entity.User{
		Password:    string(hash),
		OTPSecret:   key.Secret(),
		IsSuperuser: req.IsSuperuser,
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		IsStaff:     req.IsStaff,
		IsActive:    req.IsActive,
		DateJoined:  utils.NowUTC(),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race between the lookup and the insert.
			return nil, apierror.UsernameTakenError
		}
		return nil, mapStoreError("failed to create user", err)
	}
	return user, nil
}

func (s *UserService) Update(id int32, req *contract.UpdateUserRequest) (*entity.User, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := s.Repo.Update(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.UsernameTakenError
		}
		return nil, mapStoreError("failed to update user", err)
	}
	return user, nil
}

func (s *UserService) UpdatePassword(id int32, req *contract.UpdatePasswordRequest) (*entity.User, apierror.ErrorResponse) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	user, err := s.Repo.UpdatePassword(id, string(hash))
	if err != nil {
		return nil, mapStoreError("failed to update password", err)
	}
	return user, nil
}

func (s *UserService) Delete(id int32) apierror.ErrorResponse {
	if err := s.Repo.Delete(id); err != nil {
		return mapStoreError("failed to delete user", err)
	}
	return nil
}

// Login verifies the password and, when the account carries a TOTP
// secret, the one-time code, then issues a session token.
func (s *UserService) Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := s.Repo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.InvalidCredentialsError
		}
		return nil, mapStoreError("failed to fetch user for login", err)
	}

	if !user.IsActive {
		return nil, apierror.InvalidCredentialsError
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apierror.InvalidCredentialsError
	}

	if user.OTPSecret != "" && !totp.Validate(req.OTP, user.OTPSecret) {
		return nil, apierror.InvalidOTPError
	}

	if err := s.Repo.UpdateLastLogin(user.ID, utils.NowUTC()); err != nil {
		log.Errorf("failed to record last login for user %d: %v", user.ID, err)
	}

	token, err := utils.SignToken(s.JWTSecret, user.ID)
	if err != nil {
		log.Errorf("failed to sign token: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.LoginResponse{Token: token}, nil
}
