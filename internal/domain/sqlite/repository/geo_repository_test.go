package repository

import (
	"testing"

	"payboard/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStateCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewStateRepository(db)

	created, err := repo.Create(&contract.CreateStateRequest{Code: "CE", Name: "Ceara"})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, "CE", created.Code)

	name := "Ceara (corrected)"
	updated, err := repo.Update(created.ID, &contract.UpdateStateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "CE", updated.Code)
	assert.Equal(t, name, updated.Name)

	require.NoError(t, repo.Delete(created.ID))
	_, err = repo.GetByID(created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMunicipalityJoinsStateName(t *testing.T) {
	db := newTestDB(t)
	stateRepo := NewStateRepository(db)
	repo := NewMunicipalityRepository(db)

	state, err := stateRepo.Create(&contract.CreateStateRequest{Code: "CE", Name: "Ceara"})
	require.NoError(t, err)

	created, err := repo.Create(&contract.CreateMunicipalityRequest{StateID: state.ID, Name: "Horizonte"})
	require.NoError(t, err)
	assert.Nil(t, created.StateName)

	found, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, found.StateName)
	assert.Equal(t, "Ceara", *found.StateName)
}

func TestMunicipalityUpdateKeepsState(t *testing.T) {
	db := newTestDB(t)
	stateRepo := NewStateRepository(db)
	repo := NewMunicipalityRepository(db)

	state, err := stateRepo.Create(&contract.CreateStateRequest{Code: "CE", Name: "Ceara"})
	require.NoError(t, err)

	created, err := repo.Create(&contract.CreateMunicipalityRequest{StateID: state.ID, Name: "Horizonte"})
	require.NoError(t, err)

	name := "Pacajus"
	updated, err := repo.Update(created.ID, &contract.UpdateMunicipalityRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Pacajus", updated.Name)
	assert.Equal(t, state.ID, updated.StateID)
}

func TestMunicipalitySearchIncludesStateName(t *testing.T) {
	db := newTestDB(t)
	stateRepo := NewStateRepository(db)
	repo := NewMunicipalityRepository(db)

	ce, err := stateRepo.Create(&contract.CreateStateRequest{Code: "CE", Name: "Ceara"})
	require.NoError(t, err)
	ba, err := stateRepo.Create(&contract.CreateStateRequest{Code: "BA", Name: "Bahia"})
	require.NoError(t, err)

	_, err = repo.Create(&contract.CreateMunicipalityRequest{StateID: ce.ID, Name: "Horizonte"})
	require.NoError(t, err)
	_, err = repo.Create(&contract.CreateMunicipalityRequest{StateID: ba.ID, Name: "Salvador"})
	require.NoError(t, err)

	page, err := repo.GetPaginated("bahia", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Salvador", page.Data[0].Name)
}
