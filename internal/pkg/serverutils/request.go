package serverutils

import (
	"fmt"

	"notegraph-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidRequest, err.Error())
	}
	return nil
}

// ParseBody decodes the JSON body into out. An empty body leaves out untouched.
func ParseBody(ctx *fiber.Ctx, out interface{}) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	if err := ctx.BodyParser(out); err != nil {
		return fmt.Errorf("%w: invalid request body", apperror.ErrInvalidRequest)
	}
	return nil
}

func ParseUUIDParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := ctx.Params(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q is not a valid note id", apperror.ErrInvalidIdentifier, raw)
	}
	return id, nil
}
