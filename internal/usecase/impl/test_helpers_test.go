package impl

import (
	"io"
	"log/slog"

	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func uintPtr(v uint) *uint {
	return &v
}

// requireErrorCode checks the structured code carried by a service error.
func requireErrorCode(t interface {
	require.TestingT
	Helper()
}, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func newTestBranches() []*entity.Branch {
	return []*entity.Branch{
		{ID: 1, Name: "Downtown", Address: "12 Main Street, Springfield"},
		{ID: 2, Name: "Riverside", Address: "88 River Road, Springfield"},
		{ID: 3, Name: "Airport", Address: "1 Terminal Way, Springfield"},
	}
}
