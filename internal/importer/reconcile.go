package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"menuapp/models"
)

// Stats counts the rows seen and touched by one reconciliation.
type Stats struct {
	Menus    int   `json:"menus"`
	Submenus int   `json:"submenus"`
	Dishes   int   `json:"dishes"`
	Written  int64 `json:"written"`
	Deleted  int64 `json:"deleted"`
}

// Changed reports whether the reconciliation modified any row.
func (s Stats) Changed() bool {
	return s.Written > 0 || s.Deleted > 0
}

var numericColumns = map[string]bool{"price": true}

// upsert inserts missing rows and rewrites existing ones only when one of
// columns differs, so RowsAffected counts real changes.
func upsert(table string, columns ...string) clause.OnConflict {
	differs := make([]string, len(columns))
	for i, column := range columns {
		if numericColumns[column] {
			// decimals compare by value whatever storage class the driver picked
			differs[i] = fmt.Sprintf("CAST(%s.%s AS NUMERIC) <> CAST(excluded.%s AS NUMERIC)", table, column, column)
			continue
		}
		differs[i] = fmt.Sprintf("%s.%s <> excluded.%s", table, column, column)
	}
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
		Where:     clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: strings.Join(differs, " OR ")}}},
	}
}

func idsOf[T any](items []T, id func(T) uuid.UUID) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, id(item))
	}
	return ids
}

// deleteAbsent removes the rows of model whose id is not in keep.
func deleteAbsent(tx *gorm.DB, model any, keep []uuid.UUID) (int64, error) {
	var res *gorm.DB
	if len(keep) == 0 {
		res = tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model)
	} else {
		res = tx.Where("id NOT IN ?", keep).Delete(model)
	}
	return res.RowsAffected, res.Error
}

// Reconcile makes the database match the snapshot in one transaction:
// every listed row is inserted or updated by id and every other row is removed.
// It runs against the current rows, so edits made outside the sheet are undone.
func Reconcile(ctx context.Context, db *gorm.DB, snap Snapshot) (Stats, error) {
	var stats Stats
	if db == nil {
		return stats, gorm.ErrInvalidDB
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(snap.Menus) > 0 {
			res := tx.Omit(clause.Associations).Clauses(upsert("menus", "title", "description")).Create(&snap.Menus)
			if res.Error != nil {
				return fmt.Errorf("upsert menus: %w", res.Error)
			}
			stats.Written += res.RowsAffected
		}
		if len(snap.Submenus) > 0 {
			res := tx.Omit(clause.Associations).Clauses(upsert("submenus", "title", "description", "menu_id")).Create(&snap.Submenus)
			if res.Error != nil {
				return fmt.Errorf("upsert submenus: %w", res.Error)
			}
			stats.Written += res.RowsAffected
		}
		if len(snap.Dishes) > 0 {
			res := tx.Clauses(upsert("dishes", "title", "description", "price", "discount", "submenu_id")).Create(&snap.Dishes)
			if res.Error != nil {
				return fmt.Errorf("upsert dishes: %w", res.Error)
			}
			stats.Written += res.RowsAffected
		}

		deleted, err := deleteAbsent(tx, &models.Dish{}, idsOf(snap.Dishes, func(d models.Dish) uuid.UUID { return d.ID }))
		if err != nil {
			return fmt.Errorf("delete stale dishes: %w", err)
		}
		stats.Deleted += deleted

		deleted, err = deleteAbsent(tx, &models.Submenu{}, idsOf(snap.Submenus, func(s models.Submenu) uuid.UUID { return s.ID }))
		if err != nil {
			return fmt.Errorf("delete stale submenus: %w", err)
		}
		stats.Deleted += deleted

		deleted, err = deleteAbsent(tx, &models.Menu{}, idsOf(snap.Menus, func(m models.Menu) uuid.UUID { return m.ID }))
		if err != nil {
			return fmt.Errorf("delete stale menus: %w", err)
		}
		stats.Deleted += deleted
		return nil
	})
	if err != nil {
		return Stats{}, err
	}

	stats.Menus = len(snap.Menus)
	stats.Submenus = len(snap.Submenus)
	stats.Dishes = len(snap.Dishes)
	return stats, nil
}
