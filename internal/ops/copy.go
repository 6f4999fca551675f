package ops

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const copyBatchSize = 200

type TableCount struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

// Copy reads every table from src and inserts the rows, ids included, into
// dst inside a single transaction. Nothing is written when any insert fails.
func Copy(ctx context.Context, src, dst *gorm.DB) ([]TableCount, error) {
	type batch struct {
		name string
		rows any
		n    int
	}
	tables := Tables()
	batches := make([]batch, 0, len(tables))
	for _, t := range tables {
		name, err := t.Name(src)
		if err != nil {
			return nil, err
		}
		rows, n, err := t.load(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		batches = append(batches, batch{name: name, rows: rows, n: n})
	}

	counts := make([]TableCount, 0, len(batches))
	err := dst.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range batches {
			if b.n > 0 {
				if err := tx.Omit(clause.Associations).CreateInBatches(b.rows, copyBatchSize).Error; err != nil {
					return fmt.Errorf("insert %s: %w", b.name, err)
				}
				if err := resetSequence(tx, b.name); err != nil {
					return err
				}
			}
			counts = append(counts, TableCount{Name: b.name, Rows: b.n})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// resetSequence moves a postgres serial past the copied ids. SQLite derives
// the next rowid from the table itself.
func resetSequence(tx *gorm.DB, table string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	q := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %q))`, table, table)
	if err := tx.Exec(q).Error; err != nil {
		return fmt.Errorf("reset %s sequence: %w", table, err)
	}
	return nil
}
