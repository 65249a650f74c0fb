// Package pg holds the PostgreSQL plumbing shared by the repositories: pool
// construction with retries, goose migrations from an embedded filesystem,
// a readiness probe, transaction helpers and pgx error classification.
//
// # Transactions
//
// Repository methods take a Querier as an explicit transaction handle. A nil
// handle means auto-commit on the repository's pool; an open pgx.Tx joins the
// caller's transaction. InTx opens that transaction and guarantees commit or
// rollback:
//
//	err := pg.InTx(ctx, pool, func(tx pgx.Tx) error {
//	    if err := users.Create(ctx, tx, u); err != nil {
//	        return err
//	    }
//	    return profiles.Create(ctx, tx, u.ID)
//	})
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, db.Migrations, db.MigrationsDir, cfg, log); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// IsNotFoundError, IsDuplicateKeyError and IsForeignKeyViolationError unwrap
// pgx errors and *pgconn.PgError so business code can classify failures
// without importing pgx.
package pg
