/*
Package rest is a client for the Thoth export API, which lists the metadata
formats, specifications and platforms Thoth supports and renders records in
those specifications.

# Usage

	client, err := rest.NewClient(rest.DefaultEndpoint, logger)
	if err != nil {
		return err
	}

	res, err := client.Formats(ctx)
	records, err := res.Records()
	for _, r := range records {
		fmt.Println(r) // the format id
	}

	onix, err := client.SpecificationWork(ctx, "onix_3.0::project_muse", workID)

# Error Handling

Any non-200 answer is an *Error carrying the request line and status code:

	var restErr *rest.Error
	if errors.As(err, &restErr) && restErr.IsNotFound() {
		// unknown specification or work
	}
*/
package rest
