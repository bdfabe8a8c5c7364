package service

import (
	"payboard/internal/contract"
	"payboard/internal/domain/entity"
	"payboard/internal/domain/sqlite/repository"
	"payboard/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
)

type PayrollRepository interface {
	GetPaginated(find string, page, pageSize int) (*repository.Page[entity.PayrollEntry], error)
	GetByID(id int64) (*entity.PayrollEntry, error)
	Create(req *contract.CreatePayrollEntryRequest) (*entity.PayrollEntry, error)
	Update(id int64, req *contract.UpdatePayrollEntryRequest) (*entity.PayrollEntry, error)
	Delete(id int64) error
}

type PayrollService struct {
	Repo     PayrollRepository
	Validate *validator.Validate
}

func NewPayrollService(repo PayrollRepository, validate *validator.Validate) *PayrollService {
	return &PayrollService{Repo: repo, Validate: validate}
}

func (s *PayrollService) GetPaginated(find string, page, pageSize int) (*repository.Page[entity.PayrollEntry], apierror.ErrorResponse) {
	result, err := s.Repo.GetPaginated(find, page, pageSize)
	if err != nil {
		return nil, mapStoreError("failed to list payroll entries", err)
	}
	return result, nil
}

func (s *PayrollService) GetByID(id int64) (*entity.PayrollEntry, apierror.ErrorResponse) {
	entry, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, mapStoreError("failed to fetch payroll entry", err)
	}
	return entry, nil
}

func (s *PayrollService) Create(req *contract.CreatePayrollEntryRequest) (*entity.PayrollEntry, apierror.ErrorResponse) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	entry, err := s.Repo.Create(req)
	if err != nil {
		return nil, mapStoreError("failed to create payroll entry", err)
	}
	return entry, nil
}

func (s *PayrollService) Update(id int64, req *contract.UpdatePayrollEntryRequest) (*entity.PayrollEntry, apierror.ErrorResponse) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	entry, err := s.Repo.Update(id, req)
	if err != nil {
		return nil, mapStoreError("failed to update payroll entry", err)
	}
	return entry, nil
}

func (s *PayrollService) Delete(id int64) apierror.ErrorResponse {
	if err := s.Repo.Delete(id); err != nil {
		return mapStoreError("failed to delete payroll entry", err)
	}
	return nil
}
