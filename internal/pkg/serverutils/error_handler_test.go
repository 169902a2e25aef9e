package serverutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"notegraph-be/internal/pkg/apperror"
	"notegraph-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "wrapped not found",
			err:         fmt.Errorf("%w: note abc", apperror.ErrNotFound),
			wantStatus:  fiber.StatusNotFound,
			wantMessage: "not found: note abc",
		},
		{
			name:        "invalid identifier",
			err:         apperror.ErrInvalidIdentifier,
			wantStatus:  fiber.StatusBadRequest,
			wantMessage: "invalid identifier",
		},
		{
			name:        "invalid edge",
			err:         fmt.Errorf("%w: link 0", apperror.ErrInvalidEdge),
			wantStatus:  fiber.StatusBadRequest,
			wantMessage: "invalid edge: link 0",
		},
		{
			name:        "conflict",
			err:         apperror.ErrConflict,
			wantStatus:  fiber.StatusConflict,
			wantMessage: "conflict",
		},
		{
			name:        "fiber error keeps its code",
			err:         fiber.NewError(fiber.StatusMethodNotAllowed, "nope"),
			wantStatus:  fiber.StatusMethodNotAllowed,
			wantMessage: "nope",
		},
		{
			name:        "unknown error is hidden",
			err:         errors.New("connection refused"),
			wantStatus:  fiber.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.NewNopLogger())})
			app.Get("/", func(ctx *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.wantMessage, body.Error)
			assert.Equal(t, tt.wantStatus, body.Code)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	type req struct {
		Label string `validate:"required"`
	}

	assert.NoError(t, ValidateRequest(req{Label: "supports"}))

	err := ValidateRequest(req{})
	assert.ErrorIs(t, err, apperror.ErrInvalidRequest)
}
