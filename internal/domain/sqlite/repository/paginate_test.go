package repository

import (
	"fmt"
	"testing"

	"payboard/internal/domain/entity"
	domain "payboard/internal/domain/sqlite"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, domain.Migrate(db))
	return db
}

// stateListQuery mirrors the shape every repository config has: aliased
// relation, explicit output list, substring search on the name.
var stateListQuery = QueryConfig{
	From:     "states s",
	Columns:  "s.id, s.code, s.name",
	IDColumn: "s.id",
	Searchable: []SearchField{
		{Expr: "s.name", Op: OpContains},
	},
}

func seedStates(t *testing.T, db *gorm.DB, n int) {
	t.Helper()

	for i := 1; i <= n; i++ {
		state := entity.State{Code: "XX", Name: fmt.Sprintf("State %03d", i)}
		require.NoError(t, db.Create(&state).Error)
	}
}

func TestGetPaginatedPageMath(t *testing.T) {
	db := newTestDB(t)
	seedStates(t, db, 25)

	page, err := GetPaginated[entity.State](db, stateListQuery, "", 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.EqualValues(t, 25, page.TotalRecords)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)

	// The last page carries the remainder.
	page, err = GetPaginated[entity.State](db, stateListQuery, "", 3, 10)
	require.NoError(t, err)
	assert.Len(t, page.Data, 5)
	assert.EqualValues(t, 25, page.TotalRecords)

	// Past the end: empty data, true total preserved.
	page, err = GetPaginated[entity.State](db, stateListQuery, "", 4, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.EqualValues(t, 25, page.TotalRecords)
	assert.Equal(t, 4, page.Page)
}

func TestGetPaginatedCeilingDivision(t *testing.T) {
	db := newTestDB(t)
	seedStates(t, db, 101)

	page, err := GetPaginated[entity.State](db, stateListQuery, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 11, page.TotalPages)

	page, err = GetPaginated[entity.State](db, stateListQuery, "", 1, 101)
	require.NoError(t, err)
	assert.Equal(t, 100, page.PageSize)
	assert.Equal(t, 2, page.TotalPages)
}

func TestGetPaginatedClampsInput(t *testing.T) {
	db := newTestDB(t)
	seedStates(t, db, 3)

	page, err := GetPaginated[entity.State](db, stateListQuery, "", -4, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.PageSize)
	assert.Len(t, page.Data, 1)

	page, err = GetPaginated[entity.State](db, stateListQuery, "", 1, 5000)
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, page.PageSize)
}

func TestGetPaginatedEmptyTable(t *testing.T) {
	db := newTestDB(t)

	page, err := GetPaginated[entity.State](db, stateListQuery, "", 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.EqualValues(t, 0, page.TotalRecords)
	assert.Equal(t, 1, page.TotalPages)
}

func TestGetPaginatedSubstringSearch(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entity.State{Code: "SP", Name: "Sao Paulo"}).Error)
	require.NoError(t, db.Create(&entity.State{Code: "RJ", Name: "Rio de Janeiro"}).Error)
	require.NoError(t, db.Create(&entity.State{Code: "PR", Name: "Parana"}).Error)

	// Case-insensitive, matches anywhere in the value.
	page, err := GetPaginated[entity.State](db, stateListQuery, "PAUL", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Sao Paulo", page.Data[0].Name)

	page, err = GetPaginated[entity.State](db, stateListQuery, "zzz", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.EqualValues(t, 0, page.TotalRecords)
	assert.Equal(t, 1, page.TotalPages)
}

func TestGetPaginatedEqualitySearch(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entity.State{Code: "SP", Name: "Sao Paulo"}).Error)
	require.NoError(t, db.Create(&entity.State{Code: "SE", Name: "Sergipe"}).Error)

	cfg := QueryConfig{
		From:     "states s",
		Columns:  "s.id, s.code, s.name",
		IDColumn: "s.id",
		Searchable: []SearchField{
			{Expr: "s.code", Op: OpEquals},
		},
	}

	page, err := GetPaginated[entity.State](db, cfg, "SP", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "SP", page.Data[0].Code)

	// Equality fields never do prefix matching.
	page, err = GetPaginated[entity.State](db, cfg, "S", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestGetPaginatedSearchTermIsBound(t *testing.T) {
	db := newTestDB(t)
	seedStates(t, db, 2)

	page, err := GetPaginated[entity.State](db, stateListQuery, "'; DROP TABLE states; --", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Data)

	// The table survived; the term was a value, not SQL.
	page, err = GetPaginated[entity.State](db, stateListQuery, "", 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
}

func TestGetPaginatedOrdering(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entity.State{Code: "BB", Name: "Beta"}).Error)
	require.NoError(t, db.Create(&entity.State{Code: "AA", Name: "Alpha"}).Error)

	cfg := stateListQuery
	cfg.OrderBy = "s.name ASC"

	page, err := GetPaginated[entity.State](db, cfg, "", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Alpha", page.Data[0].Name)
	assert.Equal(t, "Beta", page.Data[1].Name)

	// Without an override the newest row comes first.
	page, err = GetPaginated[entity.State](db, stateListQuery, "", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Alpha", page.Data[0].Name)
}

func TestGetByID(t *testing.T) {
	db := newTestDB(t)
	state := entity.State{Code: "SP", Name: "Sao Paulo"}
	require.NoError(t, db.Create(&state).Error)

	found, err := GetByID[entity.State](db, stateListQuery, state.ID)
	require.NoError(t, err)
	assert.Equal(t, state.Name, found.Name)

	_, err = GetByID[entity.State](db, stateListQuery, int32(9999))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
