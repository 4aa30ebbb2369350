package ports

import "context"

// AuthClient exchanges user credentials for a bearer token.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (string, error)
}
