// Package mongo persists pocketrest sessions in a MongoDB collection.
//
//	storage, err := mongo.NewStorageFromConfig(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer storage.Client().Disconnect(context.Background())
//
//	api := pocketrest.New(url, pocketrest.WithStorage(storage))
//
// Each session slot is one document {_id: key, value: <bytes>, updated_at}.
package mongo
