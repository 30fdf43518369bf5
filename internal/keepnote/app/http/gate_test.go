package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	httpServer "keepnote/internal/keepnote/app/http"
	"keepnote/internal/keepnote/domain/entities"
)

func TestRequireSession(t *testing.T) {
	userID, err := httpServer.RequireSession(&entities.Session{ID: "sid", UserID: "alice"})
	assert.NoError(t, err)
	assert.Equal(t, "alice", userID)

	_, err = httpServer.RequireSession(nil)
	assert.ErrorIs(t, err, entities.ErrUnauthenticated)

	_, err = httpServer.RequireSession(&entities.Session{ID: "sid"})
	assert.ErrorIs(t, err, entities.ErrUnauthenticated)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		outcome httpServer.Outcome
		err     error
		want    int
	}{
		{"created", httpServer.OutcomeCreated, nil, http.StatusCreated},
		{"ok", httpServer.OutcomeOK, nil, http.StatusOK},
		{"unauthenticated", httpServer.OutcomeOK, entities.ErrUnauthenticated, http.StatusUnauthorized},
		{"invalid credentials", httpServer.OutcomeOK, entities.ErrInvalidCredentials, http.StatusUnauthorized},
		{"duplicate", httpServer.OutcomeCreated, fmt.Errorf("creating: %w", entities.ErrCategoryAlreadyExists), http.StatusConflict},
		{"user not found", httpServer.OutcomeOK, entities.ErrUserNotFound, http.StatusNotFound},
		{"category not found", httpServer.OutcomeOK, entities.ErrCategoryNotFound, http.StatusNotFound},
		{"note not found", httpServer.OutcomeOK, entities.ErrNoteNotFound, http.StatusNotFound},
		{"reminder not found", httpServer.OutcomeOK, entities.ErrReminderNotFound, http.StatusNotFound},
		{"invalid input", httpServer.OutcomeCreated, entities.ErrInvalidID, http.StatusBadRequest},
		{"unexpected", httpServer.OutcomeCreated, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpServer.Classify(tt.outcome, tt.err))
		})
	}
}
