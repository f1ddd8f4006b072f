// Package parse is the entry point of the Parse SDK.
//
// A Client ties together the SDK configuration, the process-wide log level,
// the query result cache and the query executor. Transport is supplied by the
// caller as a query.Network, so the client works with any HTTP stack:
//
//	cfg := parse.DefaultConfig()
//	cfg.ApplicationID = "my-app"
//	cfg.ClientKey = "my-key"
//
//	client, err := parse.New(ctx, cfg, network)
//	if err != nil {
//	    return err
//	}
//	defer client.Close(ctx)
//
//	q := client.Query("GameScore",
//	    query.WithConstraint("playerName", "Sean Plott"),
//	    query.WithCachePolicy(query.NetworkElseCache),
//	)
//	data, err := client.Find(ctx, q)
//
// Configuration can be loaded from YAML on any billy filesystem:
//
//	cfg, err := parse.LoadConfig(osfs.New("/etc/myapp"), "parse.yaml")
//
// See the errors, query, cache and logging packages for the building blocks.
package parse
