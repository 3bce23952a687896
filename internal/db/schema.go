package db

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var Schema string

// ApplySchema creates the tables and indexes that are still missing.
func ApplySchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
