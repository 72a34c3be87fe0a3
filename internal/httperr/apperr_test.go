package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
		code string
	}{
		{"validation", ErrValidation("sub_services_required", "falta"), KindValidation, "sub_services_required"},
		{"not found", ErrNotFound("client_not_found", "no existe"), KindNotFound, "client_not_found"},
		{"business", ErrBusiness("client_has_no_contact", "sin contacto"), KindBusiness, "client_has_no_contact"},
		{"external", ErrExternal("database_error", errors.New("conn refused")), KindExternal, "database_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsKind(tt.err, tt.kind))
			assert.True(t, IsCode(tt.err, tt.code))
			assert.False(t, IsKind(tt.err, tt.kind+100))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("conn refused")
	err := ErrExternal("database_error", cause)

	assert.ErrorIs(t, err, cause)

	ae, ok := AsApp(fmt.Errorf("wrapped: %w", err))
	require.True(t, ok)
	assert.Equal(t, "database_error", ae.Code)
}

func TestPlainErrorsAreNotApp(t *testing.T) {
	assert.False(t, IsKind(errors.New("boom"), KindExternal))

	_, ok := AsApp(errors.New("boom"))
	assert.False(t, ok)
}
