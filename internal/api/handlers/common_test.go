package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"DBDashboard/internal/dashboard"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("section: %w", dashboard.ErrInvalidSelection), http.StatusBadRequest},
		{fmt.Errorf("%w: 9", dashboard.ErrUnknownConnection), http.StatusNotFound},
		{dashboard.ErrSessionStopped, http.StatusServiceUnavailable},
		{context.DeadlineExceeded, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusForError(tt.err), tt.err.Error())
	}
}
