/*
Package store is the local relational mirror of Thoth records. Rows are keyed
by the remote ID and the Thoth instance they came from, so several instances
can share one database.

# Usage

	s, err := store.Open("sqlite", "thoth.db", logger)
	if err != nil {
		return err
	}
	defer s.Close()

	f, _ := os.Open("BIC.csv")
	n, err := s.ImportHeadings(ctx, store.SchemeBIC, f)

Postgres is selected with the "postgres" driver and a pgx DSN.
*/
package store
