package handler

import (
	"net/http"
	"time"

	"payboard/internal/contract"
	"payboard/internal/domain/entity"
	"payboard/internal/domain/sqlite/repository"
	"payboard/internal/utils"
	"payboard/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	GetPaginated(find string, page, pageSize int) (*repository.Page[entity.User], apierror.ErrorResponse)
	GetByID(id int32) (*entity.User, apierror.ErrorResponse)
	Create(req *contract.CreateUserRequest) (*entity.User, apierror.ErrorResponse)
	Update(id int32, req *contract.UpdateUserRequest) (*entity.User, apierror.ErrorResponse)
	UpdatePassword(id int32, req *contract.UpdatePasswordRequest) (*entity.User, apierror.ErrorResponse)
	Delete(id int32) apierror.ErrorResponse
	Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse)
}

type DefaultUserRoute struct {
	UserService UserService
}

func NewUserDefault(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService}
}

func (u *DefaultUserRoute) GetUsers(c echo.Context) error {
	find, page, pageSize := pageParams(c)

	result, apierr := u.UserService.GetPaginated(find, page, pageSize)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, result)
}

func (u *DefaultUserRoute) GetUser(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	user, apierr := u.UserService.GetByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, user)
}

func (u *DefaultUserRoute) CreateUser(c echo.Context) error {
	var req contract.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	user, apierr := u.UserService.Create(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, user)
}

func (u *DefaultUserRoute) UpdateUser(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	user, apierr := u.UserService.Update(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, user)
}

func (u *DefaultUserRoute) UpdatePassword(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	user, apierr := u.UserService.UpdatePassword(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, user)
}

func (u *DefaultUserRoute) DeleteUser(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := u.UserService.Delete(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

// Login sets the session cookie on success; the token also comes back in
// the body for non-browser clients.
func (u *DefaultUserRoute) Login(c echo.Context) error {
	var req contract.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := u.UserService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.SetCookie(&http.Cookie{
		Name:     utils.CookieName,
		Value:    resp.Token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, resp)
}

func (u *DefaultUserRoute) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     utils.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.NoContent(http.StatusNoContent)
}
