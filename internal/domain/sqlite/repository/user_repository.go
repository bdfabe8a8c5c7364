package repository

import (
	"payboard/internal/contract"
	"payboard/internal/domain/entity"

	"gorm.io/gorm"
)

var userQuery = QueryConfig{
	From: "auth_users u",
	Columns: `u.id, u.password, u.otp_secret, u.last_login, u.is_superuser,
		u.username, u.first_name, u.last_name, u.email,
		u.is_staff, u.is_active, u.date_joined`,
	IDColumn: "u.id",
	Searchable: []SearchField{
		{Expr: "u.username", Op: OpContains},
		{Expr: "u.email", Op: OpContains},
		{Expr: "u.first_name", Op: OpContains},
		{Expr: "u.last_name", Op: OpContains},
	},
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetPaginated(find string, page, pageSize int) (*Page[entity.User], error) {
	return GetPaginated[entity.User](r.db, userQuery, find, page, pageSize)
}

func (r *UserRepository) GetByID(id int32) (*entity.User, error) {
	return GetByID[entity.User](r.db, userQuery, id)
}

// FindByEmailOrUsername returns nil when no user holds either value.
func (r *UserRepository) FindByEmailOrUsername(email, username string) (*entity.User, error) {
	var users []entity.User
	err := r.db.Raw(
		`SELECT * FROM auth_users WHERE email = ? OR username = ? LIMIT 1`,
		email, username,
	).Scan(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var users []entity.User
	err := r.db.Raw(`SELECT * FROM auth_users WHERE username = ? LIMIT 1`, username).Scan(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &users[0], nil
}

// Create inserts a user whose password has already been hashed by the
// service. The unique indexes on email and username are the authoritative
// conflict check; violations surface as gorm.ErrDuplicatedKey.
func (r *UserRepository) Create(u *entity.User) (*entity.User, error) {
	const query = `
		INSERT INTO auth_users (
			password, otp_secret, is_superuser, username,
			first_name, last_name, email, is_staff, is_active, date_joined
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING *`

	var out entity.User
	res := r.db.Raw(query,
		u.Password, u.OTPSecret, u.IsSuperuser, u.Username,
		u.FirstName, u.LastName, u.Email, u.IsStaff, u.IsActive, u.DateJoined,
	).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *UserRepository) Update(id int32, req *contract.UpdateUserRequest) (*entity.User, error) {
	const query = `
		UPDATE auth_users
		SET
			username = COALESCE(?, username),
			email = COALESCE(?, email),
			first_name = COALESCE(?, first_name),
			last_name = COALESCE(?, last_name),
			is_superuser = COALESCE(?, is_superuser),
			is_staff = COALESCE(?, is_staff),
			is_active = COALESCE(?, is_active),
			last_login = COALESCE(?, last_login)
		WHERE id = ?
		RETURNING *`

	var out entity.User
	res := r.db.Raw(query,
		req.Username, req.Email, req.FirstName, req.LastName,
		req.IsSuperuser, req.IsStaff, req.IsActive, req.LastLogin,
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

func (r *UserRepository) UpdatePassword(id int32, hash string) (*entity.User, error) {
	const query = `UPDATE auth_users SET password = ? WHERE id = ? RETURNING *`

	var out entity.User
	res := r.db.Raw(query, hash, id).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &out, nil
}

func (r *UserRepository) UpdateLastLogin(id int32, at int64) error {
	return r.db.Exec(`UPDATE auth_users SET last_login = ? WHERE id = ?`, at, id).Error
}

func (r *UserRepository) Delete(id int32) error {
	return r.db.Exec(`DELETE FROM auth_users WHERE id = ?`, id).Error
}
