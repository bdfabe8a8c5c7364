package handler

import (
	"net/http"

	"payboard/internal/contract"
	"payboard/internal/domain/entity"
	"payboard/internal/domain/sqlite/repository"
	"payboard/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type PayrollService interface {
	GetPaginated(find string, page, pageSize int) (*repository.Page[entity.PayrollEntry], apierror.ErrorResponse)
	GetByID(id int64) (*entity.PayrollEntry, apierror.ErrorResponse)
	Create(req *contract.CreatePayrollEntryRequest) (*entity.PayrollEntry, apierror.ErrorResponse)
	Update(id int64, req *contract.UpdatePayrollEntryRequest) (*entity.PayrollEntry, apierror.ErrorResponse)
	Delete(id int64) apierror.ErrorResponse
}

type DefaultPayrollRoute struct {
	PayrollService PayrollService
}

func NewPayrollDefault(payrollService PayrollService) *DefaultPayrollRoute {
	return &DefaultPayrollRoute{PayrollService: payrollService}
}

func (p *DefaultPayrollRoute) GetPayrolls(c echo.Context) error {
	find, page, pageSize := pageParams(c)

	result, apierr := p.PayrollService.GetPaginated(find, page, pageSize)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, result)
}

func (p *DefaultPayrollRoute) GetPayroll(c echo.Context) error {
	id, apierr := idParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	entry, apierr := p.PayrollService.GetByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, entry)
}

func (p *DefaultPayrollRoute) CreatePayroll(c echo.Context) error {
	var req contract.CreatePayrollEntryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	entry, apierr := p.PayrollService.Create(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (p *DefaultPayrollRoute) UpdatePayroll(c echo.Context) error {
	id, apierr := idParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdatePayrollEntryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	entry, apierr := p.PayrollService.Update(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, entry)
}

func (p *DefaultPayrollRoute) DeletePayroll(c echo.Context) error {
	id, apierr := idParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := p.PayrollService.Delete(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
