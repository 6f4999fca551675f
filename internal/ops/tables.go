// Package ops holds the store maintenance jobs behind the CLI: snapshot
// export, copying every table between two stores and verifying a copy.
package ops

import (
	"context"
	"fmt"

	"github.com/thegoanwedding/marketplace/internal/models"
	"gorm.io/gorm"
)

// Table reads every row of one model, ordered by id.
type Table struct {
	Model any
	load  func(ctx context.Context, db *gorm.DB) (any, int, error)
}

func tableOf[T any]() Table {
	return Table{
		Model: new(T),
		load: func(ctx context.Context, db *gorm.DB) (any, int, error) {
			var rows []T
			if err := db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
				return nil, 0, err
			}
			return rows, len(rows), nil
		},
	}
}

// Tables lists the schema in dependency order, parents before children.
func Tables() []Table {
	return []Table{
		tableOf[models.Category](),
		tableOf[models.Vendor](),
		tableOf[models.Review](),
		tableOf[models.BlogPost](),
		tableOf[models.BusinessSubmission](),
		tableOf[models.Contact](),
		tableOf[models.Wedding](),
		tableOf[models.WeddingEvent](),
		tableOf[models.CustomQuestion](),
		tableOf[models.Invitation](),
		tableOf[models.RSVP](),
		tableOf[models.RSVPResponse](),
	}
}

// Name resolves the table name through gorm's naming strategy.
func (t Table) Name(db *gorm.DB) (string, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(t.Model); err != nil {
		return "", fmt.Errorf("parse %T: %w", t.Model, err)
	}
	return stmt.Schema.Table, nil
}

func (t Table) ids(ctx context.Context, db *gorm.DB) ([]uint, error) {
	var ids []uint
	if err := db.WithContext(ctx).Model(t.Model).Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
