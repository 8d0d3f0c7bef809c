// Package sqlite persists pocketrest sessions in a local SQLite file using the
// pure-Go modernc.org/sqlite driver. The CLI keeps its login state here.
//
//	db, err := sqlite.Open(ctx, sqlite.Config{Path: "~/.config/pocketrest/state.db"})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//	store := authstore.New(authstore.WithStorage(sqlite.NewStorage(db)))
package sqlite
