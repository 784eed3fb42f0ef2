// Package graphql builds, sends and unwraps single-operation GraphQL documents.
//
// Requests are typed: an operation name, a list of arguments whose values are
// graphql.Value implementations, and a field selection. All values go through
// one encoder, so strings are always quoted and escaped the same way and enum
// values are checked against the GraphQL name grammar.
//
// # Usage
//
//	transport, err := graphql.NewHTTPTransport("https://api.thoth.pub", logger,
//		graphql.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	exec := graphql.NewExecutor(transport, logger)
//
//	req := graphql.NewQuery("works", "workId", "fullTitle").
//		Arg("limit", graphql.Int(10)).
//		Arg("filter", graphql.String("foo"))
//
//	res, err := exec.Do(ctx, req)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Raw)
//
// # Error Handling
//
// Every failed round-trip returns an *Error whose Kind tells transport,
// empty-response, schema and decode failures apart. The sentinels match
// through errors.Is:
//
//	if errors.Is(err, graphql.ErrSchema) {
//		// the server rejected the document
//	}
package graphql
