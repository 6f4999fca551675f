package ops

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type TableDiff struct {
	Name    string `json:"name"`
	Source  int    `json:"source"`
	Target  int    `json:"target"`
	Missing []uint `json:"missing,omitempty"`
	Extra   []uint `json:"extra,omitempty"`
}

func (d TableDiff) Matches() bool {
	return d.Source == d.Target && len(d.Missing) == 0 && len(d.Extra) == 0
}

type Report struct {
	Tables []TableDiff `json:"tables"`
}

func (r *Report) OK() bool {
	for _, d := range r.Tables {
		if !d.Matches() {
			return false
		}
	}
	return true
}

// Mismatched returns the tables whose counts or id sets differ.
func (r *Report) Mismatched() []TableDiff {
	var out []TableDiff
	for _, d := range r.Tables {
		if !d.Matches() {
			out = append(out, d)
		}
	}
	return out
}

// Verify compares row counts and id sets of every table in src and dst.
func Verify(ctx context.Context, src, dst *gorm.DB) (*Report, error) {
	report := &Report{}
	for _, t := range Tables() {
		name, err := t.Name(src)
		if err != nil {
			return nil, err
		}
		srcIDs, err := t.ids(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("read %s ids from source: %w", name, err)
		}
		dstIDs, err := t.ids(ctx, dst)
		if err != nil {
			return nil, fmt.Errorf("read %s ids from target: %w", name, err)
		}
		report.Tables = append(report.Tables, TableDiff{
			Name:    name,
			Source:  len(srcIDs),
			Target:  len(dstIDs),
			Missing: minus(srcIDs, dstIDs),
			Extra:   minus(dstIDs, srcIDs),
		})
	}
	return report, nil
}

// minus returns the ids of a absent from b, in a's order.
func minus(a, b []uint) []uint {
	seen := make(map[uint]struct{}, len(b))
	for _, id := range b {
		seen[id] = struct{}{}
	}
	var out []uint
	for _, id := range a {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
