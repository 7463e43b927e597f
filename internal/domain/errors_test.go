package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEntityNotFoundError(t *testing.T) {
	err := NewEntityNotFoundError("City", "c1")

	require.Equal(t, http.StatusBadRequest, err.StatusCode)
	require.Equal(t, []string{"City with id c1 not found"}, err.Description)
	require.EqualError(t, err, "City with id c1 not found")
}

func TestNewEntityExistsError(t *testing.T) {
	err := NewEntityExistsError("AdminUser", "Username", "root")

	require.Equal(t, http.StatusBadRequest, err.StatusCode)
	require.Equal(t, []string{"AdminUser with Username = root already exists"}, err.Description)
}

func TestAPIError_MarshalsAsEnvelope(t *testing.T) {
	raw, err := json.Marshal(NewEntityNotFoundError("Teacher", "t1"))
	require.NoError(t, err)
	require.JSONEq(t, `{"statusCode":400,"description":["Teacher with id t1 not found"]}`, string(raw))
}

func TestWrapError_PassesTypedErrorsThrough(t *testing.T) {
	typed := NewValidationError([]string{"The name field is required"})

	wrapped := WrapError(fmt.Errorf("bind failed: %w", typed))
	require.Same(t, typed, wrapped)
}

func TestWrapError_DefaultsToInternal(t *testing.T) {
	wrapped := WrapError(errors.New("connection refused"))

	require.Equal(t, http.StatusInternalServerError, wrapped.StatusCode)
	require.Equal(t, []string{"connection refused"}, wrapped.Description)
}
