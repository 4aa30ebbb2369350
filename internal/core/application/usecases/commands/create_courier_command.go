package commands

import (
	"errors"
	"strings"

	"trackview/internal/pkg/errs"
	"trackview/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand adds a courier to the registry of the order service.
type CreateCourierCommand struct {
	name       string
	credential string

	guard guard.ConstructorGuard
}

func NewCreateCourierCommand(name, credential string) (CreateCourierCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CreateCourierCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateCourierCommand{
		name:       name,
		credential: credential,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) Name() string {
	return c.name
}

func (c CreateCourierCommand) Credential() string {
	return c.credential
}
