package postgres

import (
	"context"

	"idstore/internal/domain/repository"
	"idstore/internal/domain/specification"
	"idstore/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errNilRecord = errors.New("record is nil")

// gormRepository implements repository.Repository[T] over the table of model M.
//
// Specifications whose criteria all map to columns are pushed down as equality
// conditions, with fetch applied in SQL. Anything else is loaded and filtered with the
// specification's predicate.
type gormRepository[T any, M any] struct {
	tx       *gorm.DB
	columns  map[specification.Field]string
	order    string
	toDomain func(m *M) T
	add      func(tx *gorm.DB, item T) error
	update   func(tx *gorm.DB, item T) error
	remove   func(tx *gorm.DB, item T) error
}

func (r *gormRepository[T, M]) Add(ctx context.Context, item T) error {
	return r.write(ctx, item, r.add)
}

func (r *gormRepository[T, M]) Update(ctx context.Context, item T) error {
	return r.write(ctx, item, r.update)
}

func (r *gormRepository[T, M]) Delete(ctx context.Context, item T) error {
	return r.write(ctx, item, r.remove)
}

func (r *gormRepository[T, M]) write(ctx context.Context, item T, fn func(*gorm.DB, T) error) error {
	if fn == nil {
		return repository.ErrUnsupported
	}

	return translateError(fn(r.tx.WithContext(ctx), item))
}

func (r *gormRepository[T, M]) Find(
	ctx context.Context,
	spec specification.Specification[T],
	fetch *repository.FetchStrategy,
) ([]T, error) {
	query := r.tx.WithContext(ctx).Model(new(M))
	if r.order != "" {
		query = query.Order(r.order)
	}

	conditions, pushed := r.conditions(spec)
	if pushed {
		query = paginate(query.Clauses(clause.Where{Exprs: conditions}), fetch)
	}

	var rows []M
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(translateError(err), "failed to query records")
	}

	items := make([]T, 0, len(rows))
	for i := range rows {
		items = append(items, r.toDomain(&rows[i]))
	}
	if pushed {
		return items, nil
	}

	return repository.Page(specification.Filter(spec, items), fetch), nil
}

func (r *gormRepository[T, M]) FindFirst(
	ctx context.Context,
	spec specification.Specification[T],
	fetch *repository.FetchStrategy,
) (T, error) {
	var zero T

	first := repository.FetchStrategy{Limit: 1}
	if fetch != nil {
		first.Offset = fetch.Offset
	}

	found, err := r.Find(ctx, spec, &first)
	if err != nil {
		return zero, err
	}
	if len(found) == 0 {
		return zero, repository.ErrNotFound
	}

	return found[0], nil
}

// conditions translates the criteria of spec into column equalities. It reports false when
// spec carries no complete criteria or names a field this table does not map.
func (r *gormRepository[T, M]) conditions(spec specification.Specification[T]) ([]clause.Expression, bool) {
	criteria, complete := spec.Criteria()
	if !complete {
		return nil, false
	}

	exprs := make([]clause.Expression, 0, len(criteria))
	for _, criterion := range criteria {
		column, ok := r.columns[criterion.Field]
		if !ok {
			return nil, false
		}
		exprs = append(exprs, clause.Eq{Column: clause.Column{Name: column}, Value: criterion.Value})
	}

	return exprs, true
}

func paginate(query *gorm.DB, fetch *repository.FetchStrategy) *gorm.DB {
	if fetch == nil {
		return query
	}
	if fetch.Offset > 0 {
		query = query.Offset(fetch.Offset)
	}
	if fetch.Limit > 0 {
		query = query.Limit(fetch.Limit)
	}

	return query
}

// affectedOne turns a write that touched no rows into repository.ErrNotFound.
func affectedOne(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
