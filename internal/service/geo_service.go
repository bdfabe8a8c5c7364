package service

import (
	"strings"

	"payboard/internal/contract"
	"payboard/internal/domain/entity"
	"payboard/internal/domain/sqlite/repository"
	"payboard/internal/utils"
	"payboard/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
)

type StateRepository interface {
	GetPaginated(find string, page, pageSize int) (*repository.Page[entity.State], error)
	GetByID(id int32) (*entity.State, error)
	Create(req *contract.CreateStateRequest) (*entity.State, error)
	Update(id int32, req *contract.UpdateStateRequest) (*entity.State, error)
	Delete(id int32) error
}

type StateService struct {
	Repo     StateRepository
	Validate *validator.Validate
}

func NewStateService(repo StateRepository, validate *validator.Validate) *StateService {
	return &StateService{Repo: repo, Validate: validate}
}

func (s *StateService) GetPaginated(find string, page, pageSize int) (*repository.Page[entity.State], apierror.ErrorResponse) {
	result, err := s.Repo.GetPaginated(find, page, pageSize)
	if err != nil {
		return nil, mapStoreError("failed to list states", err)
	}
	return result, nil
}

func (s *StateService) GetByID(id int32) (*entity.State, apierror.ErrorResponse) {
	state, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, mapStoreError("failed to fetch state", err)
	}
	return state, nil
}

func (s *StateService) Create(req *contract.CreateStateRequest) (*entity.State, apierror.ErrorResponse) {
	utils.Sanitize(req)
	req.Code = strings.ToUpper(req.Code)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	state, err := s.Repo.Create(req)
	if err != nil {
		return nil, mapStoreError("failed to create state", err)
	}
	return state, nil
}

func (s *StateService) Update(id int32, req *contract.UpdateStateRequest) (*entity.State, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if req.Code != nil {
		upper := strings.ToUpper(*req.Code)
		req.Code = &upper
	}
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	state, err := s.Repo.Update(id, req)
	if err != nil {
		return nil, mapStoreError("failed to update state", err)
	}
	return state, nil
}

func (s *StateService) Delete(id int32) apierror.ErrorResponse {
	if err := s.Repo.Delete(id); err != nil {
		return mapStoreError("failed to delete state", err)
	}
	return nil
}

type MunicipalityRepository interface {
	GetPaginated(find string, page, pageSize int) (*repository.Page[entity.Municipality], error)
	GetByID(id int32) (*entity.Municipality, error)
	Create(req *contract.CreateMunicipalityRequest) (*entity.Municipality, error)
	Update(id int32, req *contract.UpdateMunicipalityRequest) (*entity.Municipality, error)
	Delete(id int32) error
}

type MunicipalityService struct {
	Repo     MunicipalityRepository
	Validate *validator.Validate
}

func NewMunicipalityService(repo MunicipalityRepository, validate *validator.Validate) *MunicipalityService {
	return &MunicipalityService{Repo: repo, Validate: validate}
}

func (s *MunicipalityService) GetPaginated(find string, page, pageSize int) (*repository.Page[entity.Municipality], apierror.ErrorResponse) {
	result, err := s.Repo.GetPaginated(find, page, pageSize)
	if err != nil {
		return nil, mapStoreError("failed to list municipalities", err)
	}
	return result, nil
}

func (s *MunicipalityService) GetByID(id int32) (*entity.Municipality, apierror.ErrorResponse) {
	municipality, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, mapStoreError("failed to fetch municipality", err)
	}
	return municipality, nil
}

func (s *MunicipalityService) Create(req *contract.CreateMunicipalityRequest) (*entity.Municipality, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	municipality, err := s.Repo.Create(req)
	if err != nil {
		return nil, mapStoreError("failed to create municipality", err)
	}
	return municipality, nil
}

func (s *MunicipalityService) Update(id int32, req *contract.UpdateMunicipalityRequest) (*entity.Municipality, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	municipality, err := s.Repo.Update(id, req)
	if err != nil {
		return nil, mapStoreError("failed to update municipality", err)
	}
	return municipality, nil
}

func (s *MunicipalityService) Delete(id int32) apierror.ErrorResponse {
	if err := s.Repo.Delete(id); err != nil {
		return mapStoreError("failed to delete municipality", err)
	}
	return nil
}
