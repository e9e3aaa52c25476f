package pagination

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100

	// defaultColumn is the fallback sort column for unrecognized orderBy
	// values. Client input never reaches the ORM unchecked.
	defaultColumn = "id"
)

// Params are the raw listing parameters as taken from the query string.
type Params struct {
	Page    int
	Limit   int
	OrderBy string
	Order   string
}

// Metadata describes the page that was returned relative to the filtered set.
type Metadata struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	Limit       int   `json:"limit"`
}

// Page is the paginated response envelope.
type Page[T any] struct {
	Data     []T      `json:"data"`
	Metadata Metadata `json:"metadata"`
}

// Normalize clamps page and limit into their valid ranges and defaults the
// sort direction. Invalid input never fails a listing, it is coerced.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Order != "asc" {
		p.Order = "desc"
	}
	return p
}

// orderClause maps the requested field through the entity's allow-list.
func (p Params) orderClause(columns map[string]string) string {
	column, ok := columns[p.OrderBy]
	if !ok {
		// Fall back to the entity's id column (qualified if the
		// allow-list qualifies it).
		if idCol, hasID := columns["id"]; hasID {
			column = idCol
		} else {
			column = defaultColumn
		}
	}
	return fmt.Sprintf("%s %s", column, p.Order)
}

// Paginate runs a COUNT and a bounded SELECT over the same filtered query and
// assembles the page with its metadata. The two statements share no snapshot;
// concurrent writers can skew totalItems against data, which is accepted.
func Paginate[T any](query *gorm.DB, p Params, columns map[string]string) (*Page[T], error) {
	p = p.Normalize()
	offset := (p.Page - 1) * p.Limit

	var totalItems int64
	if err := query.Session(&gorm.Session{}).Count(&totalItems).Error; err != nil {
		return nil, fmt.Errorf("count rows: %w", err)
	}

	data := make([]T, 0, p.Limit)
	err := query.Session(&gorm.Session{}).
		Order(p.orderClause(columns)).
		Limit(p.Limit).
		Offset(offset).
		Find(&data).Error
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}

	totalPages := int((totalItems + int64(p.Limit) - 1) / int64(p.Limit))

	return &Page[T]{
		Data: data,
		Metadata: Metadata{
			CurrentPage: p.Page,
			TotalPages:  totalPages,
			TotalItems:  totalItems,
			HasNextPage: p.Page < totalPages,
			HasPrevPage: p.Page > 1,
			Limit:       p.Limit,
		},
	}, nil
}
