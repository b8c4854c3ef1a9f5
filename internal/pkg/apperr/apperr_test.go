package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapAndAs(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("create order: %w", Wrap(BadGatewayCode, "gateway failed", cause))

	appErr, ok := As(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadGateway, appErr.Status())
	require.Equal(t, "gateway failed", appErr.Msg)
	require.ErrorIs(t, err, cause)
	require.Contains(t, appErr.Error(), "connection refused")
}

func TestIsCode(t *testing.T) {
	require.True(t, IsCode(New(NotFoundCode, "Order not found"), NotFoundCode))
	require.False(t, IsCode(New(NotFoundCode, "Order not found"), BadRequestCode))
	require.False(t, IsCode(errors.New("plain"), InternalErrorCode))
	require.Equal(t, "Order with ID X not found", Newf(NotFoundCode, "Order with ID %s not found", "X").Msg)
}
