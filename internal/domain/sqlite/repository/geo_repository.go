package repository

import (
	"payboard/internal/contract"
	"payboard/internal/domain/entity"

	"gorm.io/gorm"
)

var stateQuery = QueryConfig{
	From:     "states s",
	Columns:  "s.id, s.code, s.name",
	IDColumn: "s.id",
	OrderBy:  "s.code DESC",
	Searchable: []SearchField{
		{Expr: "s.code", Op: OpContains},
		{Expr: "s.name", Op: OpContains},
	},
}

type StateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) GetPaginated(find string, page, pageSize int) (*Page[entity.State], error) {
	return GetPaginated[entity.State](r.db, stateQuery, find, page, pageSize)
}

func (r *StateRepository) GetByID(id int32) (*entity.State, error) {
	return GetByID[entity.State](r.db, stateQuery, id)
}

func (r *StateRepository) Create(req *contract.CreateStateRequest) (*entity.State, error) {
	const query = `INSERT INTO states (code, name) VALUES (?, ?) RETURNING *`

	var out entity.State
	res := r.db.Raw(query, req.Code, req.Name).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *StateRepository) Update(id int32, req *contract.UpdateStateRequest) (*entity.State, error) {
	const query = `
		UPDATE states
		SET
			code = COALESCE(?, code),
			name = COALESCE(?, name)
		WHERE id = ?
		RETURNING *`

	var out entity.State
	res := r.db.Raw(query, req.Code, req.Name, id).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &out, nil
}

func (r *StateRepository) Delete(id int32) error {
	return r.db.Exec(`DELETE FROM states WHERE id = ?`, id).Error
}

// municipalityQuery joins the owning state for its display name.
var municipalityQuery = QueryConfig{
	From: `municipalities m
		INNER JOIN states s ON s.id = m.state_id`,
	Columns:  "m.id, m.state_id, m.name, s.name AS state_name",
	IDColumn: "m.id",
	OrderBy:  "m.name ASC",
	Searchable: []SearchField{
		{Expr: "m.name", Op: OpContains},
		{Expr: "s.name", Op: OpContains},
	},
}

type MunicipalityRepository struct {
	db *gorm.DB
}

func NewMunicipalityRepository(db *gorm.DB) *MunicipalityRepository {
	return &MunicipalityRepository{db: db}
}

func (r *MunicipalityRepository) GetPaginated(find string, page, pageSize int) (*Page[entity.Municipality], error) {
	return GetPaginated[entity.Municipality](r.db, municipalityQuery, find, page, pageSize)
}

func (r *MunicipalityRepository) GetByID(id int32) (*entity.Municipality, error) {
	return GetByID[entity.Municipality](r.db, municipalityQuery, id)
}

func (r *MunicipalityRepository) Create(req *contract.CreateMunicipalityRequest) (*entity.Municipality, error) {
	const query = `
		INSERT INTO municipalities (state_id, name)
		VALUES (?, ?)
		RETURNING *, CAST(NULL AS TEXT) AS state_name`

	var out entity.Municipality
	res := r.db.Raw(query, req.StateID, req.Name).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *MunicipalityRepository) Update(id int32, req *contract.UpdateMunicipalityRequest) (*entity.Municipality, error) {
	const query = `
		UPDATE municipalities
		SET name = COALESCE(?, name)
		WHERE id = ?
		RETURNING *, CAST(NULL AS TEXT) AS state_name`

	var out entity.Municipality
	res := r.db.Raw(query, req.Name, id).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &out, nil
}

func (r *MunicipalityRepository) Delete(id int32) error {
	return r.db.Exec(`DELETE FROM municipalities WHERE id = ?`, id).Error
}
