/*
Package mirror keeps a local store in step with publishers on Thoth
instances.

A pass for one target stores the publisher, then every work it lists with
the work's contributions, contributors and subjects. Once all works are
stored the listing is read again and local works no longer present are
deleted. Nothing spans the pass in a transaction; a failure leaves the
works synced so far in place.

# Usage

	syncer := mirror.NewSyncer(st, mirror.ClientFactory(logger), logger,
		mirror.WithConcurrency(2))
	results, err := syncer.Run(ctx, []mirror.Target{
		{Publisher: "85fd969a-a16c-480b-b641-cb9adf979c3b", Endpoint: thoth.DefaultEndpoint, Version: "0.9.0"},
	})
*/
package mirror
