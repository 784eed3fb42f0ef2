/*
Package thoth is a client for the Thoth open-access metadata API.

A Client binds one API version. Each version owns its table of query
operations, the parameters they accept, the fields they select, its
mutations and its record formatters. Versions build on their predecessors:

	0.4.2  funders, free-text contributor institutions
	0.5.0  updatedAtWithRelations on works
	0.6.0  institutions and affiliations replace funders
	0.8.0  locations, work relations, dimensions on publications
	0.8.4  series descriptions and calls for papers
	0.9.0  references

# Usage

	client, err := thoth.NewClient(thoth.DefaultEndpoint, logger,
		thoth.WithVersion("0.9.0"))
	if err != nil {
		return err
	}

	res, err := client.Works(ctx, thoth.Params{Limit: 10, Filter: "open"})
	if err != nil {
		return err
	}
	records, err := res.Records()
	for _, r := range records {
		fmt.Println(r)
	}

	// The raw body exactly as the server returned it
	fmt.Println(res.Raw)

Mutations need a session token:

	if err := client.Login(ctx, email, password); err != nil {
		return err
	}
	id, err := client.Mutate(ctx, "createPublisher", map[string]any{
		"publisherName": "Open Book Publishers",
	})

# Error Handling

Operations and parameters a version does not bind fail before any request
is sent:

	_, err := client.Locations(ctx, thoth.Params{})
	if errors.Is(err, thoth.ErrUnsupportedOperation) {
		// only 0.8.0 and later know locations
	}

Server-side failures are *graphql.Error values; errors.Is distinguishes
graphql.ErrTransport, graphql.ErrEmptyResponse, graphql.ErrSchema and
graphql.ErrDecode. A single-entity query answered with null wraps ErrNotFound.
*/
package thoth
