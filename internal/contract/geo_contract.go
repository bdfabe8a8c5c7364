package contract

type CreateStateRequest struct {
	Code string `json:"code" validate:"required,len=2,alpha"`
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateStateRequest struct {
	Code *string `json:"code" validate:"omitempty,len=2,alpha"`
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

type CreateMunicipalityRequest struct {
	StateID int32  `json:"state_id" validate:"required"`
	Name    string `json:"name" validate:"required,max=150"`
}

// UpdateMunicipalityRequest renames a municipality. The owning state is
// immutable after creation.
type UpdateMunicipalityRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=150"`
}
