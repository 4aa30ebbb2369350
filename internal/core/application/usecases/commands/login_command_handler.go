package commands

import (
	"context"

	"trackview/internal/core/ports"
)

type LoginCommandHandler struct {
	auth ports.AuthClient
}

func NewLoginCommandHandler(auth ports.AuthClient) LoginCommandHandler {
	return LoginCommandHandler{auth: auth}
}

// Handle returns the token issued by the auth service. Errors from the
// service are returned as they are so the caller can tell rejected
// credentials from an unreachable service.
func (h LoginCommandHandler) Handle(ctx context.Context, command LoginCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	return h.auth.Login(ctx, command.Username(), command.Password())
}
