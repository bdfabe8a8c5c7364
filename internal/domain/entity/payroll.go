package entity

import "github.com/shopspring/decimal"

// PayrollEntry is one employee's payroll line for a given organization,
// year and month. EmployeeName and OrganizationName are joined in by read
// queries only and are never persisted on the row itself.
type PayrollEntry struct {
	ID               int64           `gorm:"primaryKey" json:"id"`
	OrganizationID   int32           `gorm:"not null" json:"organization_id"`
	Year             int32           `gorm:"not null" json:"year"`
	Month            int32           `gorm:"not null" json:"month"`
	EmployeeID       int32           `gorm:"not null" json:"employee_id"`
	Salary           decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"salary"`
	FGTSBase         decimal.Decimal `gorm:"column:fgts_base;type:decimal(14,2);not null" json:"fgts_base"`
	INSSBase         decimal.Decimal `gorm:"column:inss_base;type:decimal(14,2);not null" json:"inss_base"`
	IRRFBase         decimal.Decimal `gorm:"column:irrf_base;type:decimal(14,2);not null" json:"irrf_base"`
	IRRFDeduction    decimal.Decimal `gorm:"column:irrf_deduction;type:decimal(14,2);not null" json:"irrf_deduction"`
	JobRoleID        int32           `gorm:"not null" json:"job_role_id"`
	SectorID         int32           `gorm:"not null" json:"sector_id"`
	DepartmentID     int32           `gorm:"not null" json:"department_id"`
	EmploymentLinkID int32           `gorm:"not null" json:"employment_link_id"`

	// Joined display data
	EmployeeName     *string `gorm:"column:employee_name;-:migration" json:"employee_name"`
	OrganizationName *string `gorm:"column:organization_name;-:migration" json:"organization_name"`
}

func (PayrollEntry) TableName() string {
	return "payroll_entries"
}

// Employee and Organization are reference rows payroll entries point at.
// They are managed outside this service; only their names are consumed here.
type Employee struct {
	ID   int32  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (Employee) TableName() string {
	return "employees"
}

type Organization struct {
	ID   int32  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (Organization) TableName() string {
	return "organizations"
}
