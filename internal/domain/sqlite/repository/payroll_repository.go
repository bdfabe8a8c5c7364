package repository

import (
	"payboard/internal/contract"
	"payboard/internal/domain/entity"

	"gorm.io/gorm"
)

// payrollQuery enriches every read with the employee and organization
// names; write paths force both to a typed NULL instead.
var payrollQuery = QueryConfig{
	From: `payroll_entries p
		INNER JOIN employees e ON e.id = p.employee_id
		INNER JOIN organizations o ON o.id = p.organization_id`,
	Columns: `p.id, p.organization_id, p.year, p.month, p.employee_id,
		p.salary, p.fgts_base, p.inss_base, p.irrf_base, p.irrf_deduction,
		p.job_role_id, p.sector_id, p.department_id, p.employment_link_id,
		e.name AS employee_name, o.name AS organization_name`,
	IDColumn: "p.id",
	OrderBy:  "p.year DESC, p.month ASC",
	Searchable: []SearchField{
		{Expr: "p.year", Op: OpEquals},
		{Expr: "p.month", Op: OpEquals},
		{Expr: "e.name", Op: OpContains},
	},
}

type PayrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) *PayrollRepository {
	return &PayrollRepository{db: db}
}

func (r *PayrollRepository) GetPaginated(find string, page, pageSize int) (*Page[entity.PayrollEntry], error) {
	return GetPaginated[entity.PayrollEntry](r.db, payrollQuery, find, page, pageSize)
}

func (r *PayrollRepository) GetByID(id int64) (*entity.PayrollEntry, error) {
	return GetByID[entity.PayrollEntry](r.db, payrollQuery, id)
}

func (r *PayrollRepository) Create(req *contract.CreatePayrollEntryRequest) (*entity.PayrollEntry, error) {
	const query = `
		INSERT INTO payroll_entries (
			organization_id, year, month, employee_id,
			salary, fgts_base, inss_base, irrf_base, irrf_deduction,
			job_role_id, sector_id, department_id, employment_link_id
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING *, CAST(NULL AS TEXT) AS employee_name, CAST(NULL AS TEXT) AS organization_name`

	var out entity.PayrollEntry
	res := r.db.Raw(query,
		req.OrganizationID, req.Year, req.Month, req.EmployeeID,
		req.Salary, req.FGTSBase, req.INSSBase, req.IRRFBase, req.IRRFDeduction,
		req.JobRoleID, req.SectorID, req.DepartmentID, req.EmploymentLinkID,
	).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *PayrollRepository) Update(id int64, req *contract.UpdatePayrollEntryRequest) (*entity.PayrollEntry, error) {
	const query = `
		UPDATE payroll_entries
		SET
			organization_id = COALESCE(?, organization_id),
			year = COALESCE(?, year),
			month = COALESCE(?, month),
			employee_id = COALESCE(?, employee_id),
			salary = COALESCE(?, salary),
			fgts_base = COALESCE(?, fgts_base),
			inss_base = COALESCE(?, inss_base),
			irrf_base = COALESCE(?, irrf_base),
			irrf_deduction = COALESCE(?, irrf_deduction),
			job_role_id = COALESCE(?, job_role_id),
			sector_id = COALESCE(?, sector_id),
			department_id = COALESCE(?, department_id),
			employment_link_id = COALESCE(?, employment_link_id)
		WHERE id = ?
		RETURNING *, CAST(NULL AS TEXT) AS employee_name, CAST(NULL AS TEXT) AS organization_name`

	var out entity.PayrollEntry
	res := r.db.Raw(query,
		req.OrganizationID, req.Year, req.Month, req.EmployeeID,
		req.Salary, req.FGTSBase, req.INSSBase, req.IRRFBase, req.IRRFDeduction,
		req.JobRoleID, req.SectorID, req.DepartmentID, req.EmploymentLinkID,
		id,
	).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &out, nil
}

func (r *PayrollRepository) Delete(id int64) error {
	return r.db.Exec(`DELETE FROM payroll_entries WHERE id = ?`, id).Error
}
