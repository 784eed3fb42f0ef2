// Package auth exchanges Thoth account credentials for a bearer token.
//
// # Usage
//
//	a, err := auth.NewAuthenticator("https://api.thoth.pub", logger, 30*time.Second)
//	if err != nil {
//		log.Fatal(err)
//	}
//	token, err := a.Login(ctx, email, password)
//	if errors.Is(err, auth.ErrWrongCredentials) {
//		// prompt again
//	}
//	transport.SetAuthorization(token.Bearer())
package auth
