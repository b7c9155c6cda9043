package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a river job on the same handle as the rest of the storage.
// Inside a transaction the job becomes visible only on commit, which lets a
// rescan request delete stale findings and enqueue its job atomically.
// The client built here is insert-only and never works jobs.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		var client *river.Client[*sql.Tx]
		client, err = river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river queue client: %w", err)
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		var client *river.Client[*sql.Tx]
		client, err = river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river queue client: %w", err)
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("could not insert job: unsupported db handle %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert job %s: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
