// Package pg persists pocketrest sessions in PostgreSQL using pgx.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    return err
//	}
//	api := pocketrest.New(url, pocketrest.WithStorage(pg.NewStorage(pool)))
//
// Migrations are embedded and applied with goose; the schema holds a single
// key/value table, pocketrest_sessions.
package pg
