// Package redis persists pocketrest sessions in Redis.
//
// Connect retries until the server answers; Storage implements
// authstore.Storage on top of any go-redis UniversalClient:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	api := pocketrest.New(url, pocketrest.WithStorage(redis.NewStorageFromConfig(client, cfg)))
//
// Config fields are read from REDIS_* environment variables through
// github.com/caarlos0/env.
package redis
