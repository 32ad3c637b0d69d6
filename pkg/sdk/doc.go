// Package skillmatch embeds the skill matching and candidate ranking engine
// in a Go program.
//
// Every dependency is optional. With no options the client scores with the
// local matcher chain only:
//
//	client, _ := skillmatch.New(ctx)
//	defer client.Close()
//
//	res, _ := client.Rank(ctx, skillmatch.Task{
//	    ID:             "task-42",
//	    RequiredSkills: map[string]float64{"React": 4, "Node.js": 3},
//	    Priority:       "high",
//	}, candidates, 10)
//
// Add semantic matching with an embedding provider (cached in Redis when
// WithRedis is given) or an external similarity service:
//
//	client, _ := skillmatch.New(ctx,
//	    skillmatch.WithEmbedder(myEmbedder),
//	    skillmatch.WithRedis("localhost:6379", ""),
//	    skillmatch.WithSimilarityService("http://similarity:8091", 3*time.Second),
//	)
package skillmatch
