package contract

import "github.com/shopspring/decimal"

type CreatePayrollEntryRequest struct {
	OrganizationID   int32           `json:"organization_id" validate:"required"`
	Year             int32           `json:"year" validate:"required,min=1900,max=2100"`
	Month            int32           `json:"month" validate:"required,min=1,max=12"`
	EmployeeID       int32           `json:"employee_id" validate:"required"`
	Salary           decimal.Decimal `json:"salary" validate:"required"`
	FGTSBase         decimal.Decimal `json:"fgts_base"`
	INSSBase         decimal.Decimal `json:"inss_base"`
	IRRFBase         decimal.Decimal `json:"irrf_base"`
	IRRFDeduction    decimal.Decimal `json:"irrf_deduction"`
	JobRoleID        int32           `json:"job_role_id" validate:"required"`
	SectorID         int32           `json:"sector_id" validate:"required"`
	DepartmentID     int32           `json:"department_id" validate:"required"`
	EmploymentLinkID int32           `json:"employment_link_id" validate:"required"`
}

// UpdatePayrollEntryRequest patches a payroll entry; omitted fields keep
// their stored values.
type UpdatePayrollEntryRequest struct {
	OrganizationID   *int32           `json:"organization_id"`
	Year             *int32           `json:"year" validate:"omitempty,min=1900,max=2100"`
	Month            *int32           `json:"month" validate:"omitempty,min=1,max=12"`
	EmployeeID       *int32           `json:"employee_id"`
	Salary           *decimal.Decimal `json:"salary"`
	FGTSBase         *decimal.Decimal `json:"fgts_base"`
	INSSBase         *decimal.Decimal `json:"inss_base"`
	IRRFBase         *decimal.Decimal `json:"irrf_base"`
	IRRFDeduction    *decimal.Decimal `json:"irrf_deduction"`
	JobRoleID        *int32           `json:"job_role_id"`
	SectorID         *int32           `json:"sector_id"`
	DepartmentID     *int32           `json:"department_id"`
	EmploymentLinkID *int32           `json:"employment_link_id"`
}
