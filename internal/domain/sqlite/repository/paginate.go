package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// MaxPageSize is the hard cap on page_size; larger requests are clamped.
const MaxPageSize = 100

type SearchOp int

const (
	// OpEquals compares the searchable expression to the raw search term.
	OpEquals SearchOp = iota
	// OpContains matches the term as a case-insensitive substring.
	OpContains
)

type SearchField struct {
	Expr string
	Op   SearchOp
}

// QueryConfig describes how one entity is queried. Every identifier in it
// is fixed at compile time by the owning repository; request input only
// ever reaches the engine as bound parameter values.
type QueryConfig struct {
	// From is the relation expression, optionally aliased and pre-joined
	// to related tables for read enrichment.
	From string
	// Columns is the output list, aliased to match the entity's field
	// names exactly. Write-path queries force joined display columns to a
	// typed NULL so one row mapping serves both shapes.
	Columns string
	// IDColumn is used for lookups and as the ordering fallback.
	IDColumn string
	// OrderBy overrides the default ordering of "IDColumn DESC".
	OrderBy string
	// Where is an optional fixed predicate applied to every query,
	// e.g. excluding soft-deleted rows.
	Where string
	// Searchable lists the fields eligible for free-text filtering.
	Searchable []SearchField
}

type Page[T any] struct {
	Data         []T   `json:"data"`
	TotalRecords int64 `json:"total_records"`
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
}

// GetPaginated runs the count and data queries for one page. Page numbers
// are 1-indexed; out-of-range inputs are clamped, and a page past the end
// yields an empty data slice with the true total. The two queries are not
// isolated from concurrent writes.
func GetPaginated[T any](db *gorm.DB, cfg QueryConfig, find string, page, pageSize int) (*Page[T], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	where, args := cfg.whereClause(find)

	var total int64
	countQuery := "SELECT COUNT(*) FROM " + cfg.From + where
	if err := db.Raw(countQuery, args...).Scan(&total).Error; err != nil {
		return nil, err
	}

	orderBy := cfg.OrderBy
	if orderBy == "" {
		orderBy = cfg.IDColumn + " DESC"
	}

	dataQuery := fmt.Sprintf(
		"SELECT %s FROM %s%s ORDER BY %s LIMIT ? OFFSET ?",
		cfg.Columns, cfg.From, where, orderBy,
	)
	args = append(args, pageSize, (page-1)*pageSize)

	data := make([]T, 0, pageSize)
	if err := db.Raw(dataQuery, args...).Scan(&data).Error; err != nil {
		return nil, err
	}

	totalPages := 1
	if total > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	return &Page[T]{
		Data:         data,
		TotalRecords: total,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
	}, nil
}

// GetByID fetches exactly one row. Zero rows is gorm.ErrRecordNotFound,
// never a zero value.
func GetByID[T any](db *gorm.DB, cfg QueryConfig, id any) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", cfg.Columns, cfg.From)
	if cfg.Where != "" {
		query += fmt.Sprintf(" WHERE %s AND %s = ? LIMIT 1", cfg.Where, cfg.IDColumn)
	} else {
		query += fmt.Sprintf(" WHERE %s = ? LIMIT 1", cfg.IDColumn)
	}

	var out T
	res := db.Raw(query, id).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &out, nil
}

// whereClause builds the fixed predicate plus the OR-combined search
// filter. Each searchable field gets its own bound parameter so equality
// fields receive the raw term while substring fields get it wildcarded.
func (cfg QueryConfig) whereClause(find string) (string, []any) {
	var preds []string
	var args []any

	if cfg.Where != "" {
		preds = append(preds, cfg.Where)
	}

	if find != "" && len(cfg.Searchable) > 0 {
		parts := make([]string, 0, len(cfg.Searchable))
		for _, f := range cfg.Searchable {
			switch f.Op {
			case OpEquals:
				parts = append(parts, f.Expr+" = ?")
				args = append(args, find)
			case OpContains:
				parts = append(parts, "LOWER("+f.Expr+") LIKE ?")
				args = append(args, "%"+strings.ToLower(find)+"%")
			}
		}
		preds = append(preds, "("+strings.Join(parts, " OR ")+")")
	}

	if len(preds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(preds, " AND "), args
}
