package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fluentloc/internal/domain/entities"
	"fluentloc/internal/ports/output"
)

const selectLocalizedStrings = `SELECT resource_name, culture, value FROM localized_strings`

var _ output.CatalogSource = (*ResourceRepository)(nil)

// Querier is the subset of *pgxpool.Pool used by ResourceRepository.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ResourceRepository loads the resource table from the localized_strings
// table, one row per (resource, culture).
type ResourceRepository struct {
	q Querier
}

// NewResourceRepository creates a ResourceRepository.
func NewResourceRepository(q Querier) *ResourceRepository {
	return &ResourceRepository{q: q}
}

func (r *ResourceRepository) String() string {
	return "postgres localized_strings"
}

func (r *ResourceRepository) Load(ctx context.Context) (entities.Mappings, error) {
	rows, err := r.q.Query(ctx, selectLocalizedStrings)
	if err != nil {
		return nil, fmt.Errorf("query localized strings: %w", err)
	}
	defer rows.Close()

	m := entities.Mappings{}
	for rows.Next() {
		var name, ci, value string
		if err := rows.Scan(&name, &ci, &value); err != nil {
			return nil, fmt.Errorf("scan localized string: %w", err)
		}
		addRow(m, entities.ResourceName(name), entities.Culture(ci), value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate localized strings: %w", err)
	}
	return m, nil
}

func addRow(m entities.Mappings, name entities.ResourceName, ci entities.Culture, value string) {
	entry, ok := m[name]
	if !ok {
		entry = entities.LocalizationEntry{}
		m[name] = entry
	}
	entry[ci] = value
}
