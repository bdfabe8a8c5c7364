package handler

import (
	"net/http"

	"payboard/internal/contract"
	"payboard/internal/domain/entity"
	"payboard/internal/domain/sqlite/repository"
	"payboard/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type StateService interface {
	GetPaginated(find string, page, pageSize int) (*repository.Page[entity.State], apierror.ErrorResponse)
	GetByID(id int32) (*entity.State, apierror.ErrorResponse)
	Create(req *contract.CreateStateRequest) (*entity.State, apierror.ErrorResponse)
	Update(id int32, req *contract.UpdateStateRequest) (*entity.State, apierror.ErrorResponse)
	Delete(id int32) apierror.ErrorResponse
}

type MunicipalityService interface {
	GetPaginated(find string, page, pageSize int) (*repository.Page[entity.Municipality], apierror.ErrorResponse)
	GetByID(id int32) (*entity.Municipality, apierror.ErrorResponse)
	Create(req *contract.CreateMunicipalityRequest) (*entity.Municipality, apierror.ErrorResponse)
	Update(id int32, req *contract.UpdateMunicipalityRequest) (*entity.Municipality, apierror.ErrorResponse)
	Delete(id int32) apierror.ErrorResponse
}

type DefaultGeoRoute struct {
	StateService        StateService
	MunicipalityService MunicipalityService
}

func NewGeoDefault(stateService StateService, municipalityService MunicipalityService) *DefaultGeoRoute {
	return &DefaultGeoRoute{
		StateService:        stateService,
		MunicipalityService: municipalityService,
	}
}

// ==== STATES ====

func (g *DefaultGeoRoute) GetStates(c echo.Context) error {
	find, page, pageSize := pageParams(c)

	result, apierr := g.StateService.GetPaginated(find, page, pageSize)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, result)
}

func (g *DefaultGeoRoute) GetState(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	state, apierr := g.StateService.GetByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, state)
}

func (g *DefaultGeoRoute) CreateState(c echo.Context) error {
	var req contract.CreateStateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	state, apierr := g.StateService.Create(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, state)
}

func (g *DefaultGeoRoute) UpdateState(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateStateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	state, apierr := g.StateService.Update(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, state)
}

func (g *DefaultGeoRoute) DeleteState(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := g.StateService.Delete(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

// ==== MUNICIPALITIES ====

func (g *DefaultGeoRoute) GetMunicipalities(c echo.Context) error {
	find, page, pageSize := pageParams(c)

	result, apierr := g.MunicipalityService.GetPaginated(find, page, pageSize)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, result)
}

func (g *DefaultGeoRoute) GetMunicipality(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	municipality, apierr := g.MunicipalityService.GetByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, municipality)
}

func (g *DefaultGeoRoute) CreateMunicipality(c echo.Context) error {
	var req contract.CreateMunicipalityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	municipality, apierr := g.MunicipalityService.Create(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, municipality)
}

func (g *DefaultGeoRoute) UpdateMunicipality(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateMunicipalityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	municipality, apierr := g.MunicipalityService.Update(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, municipality)
}

func (g *DefaultGeoRoute) DeleteMunicipality(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := g.MunicipalityService.Delete(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
