package repository

import (
	"testing"

	"payboard/internal/contract"
	"payboard/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPayrollRefs(t *testing.T, db *gorm.DB) (employeeID, orgID int32) {
	t.Helper()

	employee := entity.Employee{Name: "Maria Souza"}
	require.NoError(t, db.Create(&employee).Error)

	org := entity.Organization{Name: "Prefeitura de Horizonte"}
	require.NoError(t, db.Create(&org).Error)

	return employee.ID, org.ID
}

func newPayrollEntry(employeeID, orgID int32, year, month int32) *contract.CreatePayrollEntryRequest {
	return &contract.CreatePayrollEntryRequest{
		OrganizationID:   orgID,
		Year:             year,
		Month:            month,
		EmployeeID:       employeeID,
		Salary:           decimal.RequireFromString("3500.00"),
		FGTSBase:         decimal.RequireFromString("3500.00"),
		INSSBase:         decimal.RequireFromString("3500.00"),
		IRRFBase:         decimal.RequireFromString("3200.50"),
		IRRFDeduction:    decimal.RequireFromString("189.59"),
		JobRoleID:        1,
		SectorID:         1,
		DepartmentID:     1,
		EmploymentLinkID: 1,
	}
}

func TestPayrollCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	employeeID, orgID := seedPayrollRefs(t, db)
	repo := NewPayrollRepository(db)

	created, err := repo.Create(newPayrollEntry(employeeID, orgID, 2024, 3))
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	// The write path has no joins, so display names come back empty.
	assert.Nil(t, created.EmployeeName)
	assert.Nil(t, created.OrganizationName)
	assert.True(t, created.Salary.Equal(decimal.RequireFromString("3500.00")))

	found, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, found.EmployeeName)
	require.NotNil(t, found.OrganizationName)
	assert.Equal(t, "Maria Souza", *found.EmployeeName)
	assert.Equal(t, "Prefeitura de Horizonte", *found.OrganizationName)
	assert.True(t, found.IRRFDeduction.Equal(decimal.RequireFromString("189.59")))
}

func TestPayrollPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	employeeID, orgID := seedPayrollRefs(t, db)
	repo := NewPayrollRepository(db)

	created, err := repo.Create(newPayrollEntry(employeeID, orgID, 2024, 3))
	require.NoError(t, err)

	newSalary := decimal.RequireFromString("4200.00")
	updated, err := repo.Update(created.ID, &contract.UpdatePayrollEntryRequest{Salary: &newSalary})
	require.NoError(t, err)
	assert.True(t, updated.Salary.Equal(newSalary))
	// Omitted fields keep their stored values.
	assert.EqualValues(t, 2024, updated.Year)
	assert.EqualValues(t, 3, updated.Month)
	assert.True(t, updated.IRRFBase.Equal(created.IRRFBase))
}

func TestPayrollUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewPayrollRepository(db)

	year := int32(2024)
	_, err := repo.Update(9999, &contract.UpdatePayrollEntryRequest{Year: &year})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPayrollDelete(t *testing.T) {
	db := newTestDB(t)
	employeeID, orgID := seedPayrollRefs(t, db)
	repo := NewPayrollRepository(db)

	created, err := repo.Create(newPayrollEntry(employeeID, orgID, 2024, 3))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	_, err = repo.GetByID(created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPayrollSearch(t *testing.T) {
	db := newTestDB(t)
	employeeID, orgID := seedPayrollRefs(t, db)
	repo := NewPayrollRepository(db)

	_, err := repo.Create(newPayrollEntry(employeeID, orgID, 2023, 12))
	require.NoError(t, err)
	_, err = repo.Create(newPayrollEntry(employeeID, orgID, 2024, 1))
	require.NoError(t, err)

	// Year matches by equality.
	page, err := repo.GetPaginated("2024", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.EqualValues(t, 2024, page.Data[0].Year)

	// Employee name matches by substring.
	page, err = repo.GetPaginated("souza", 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)

	// A partial year is not a prefix match.
	page, err = repo.GetPaginated("202", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestPayrollOrdering(t *testing.T) {
	db := newTestDB(t)
	employeeID, orgID := seedPayrollRefs(t, db)
	repo := NewPayrollRepository(db)

	for _, ym := range [][2]int32{{2023, 6}, {2024, 2}, {2024, 1}} {
		_, err := repo.Create(newPayrollEntry(employeeID, orgID, ym[0], ym[1]))
		require.NoError(t, err)
	}

	// Newest year first, months ascending within it.
	page, err := repo.GetPaginated("", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.EqualValues(t, 2024, page.Data[0].Year)
	assert.EqualValues(t, 1, page.Data[0].Month)
	assert.EqualValues(t, 2024, page.Data[1].Year)
	assert.EqualValues(t, 2, page.Data[1].Month)
	assert.EqualValues(t, 2023, page.Data[2].Year)
}
