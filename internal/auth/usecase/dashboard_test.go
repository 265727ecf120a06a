package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniorhq/junior/internal/pkg/goerror"
	"github.com/juniorhq/junior/internal/pkg/session"
)

func TestDashboardRequiresAuthentication(t *testing.T) {
	d := newTestUsecase(t)

	_, err := d.uc.Dashboard(sidCtx())
	gerr := asGoError(t, err)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
}

func TestDashboardDeletedAccount(t *testing.T) {
	d := newTestUsecase(t)
	require.NoError(t, d.store.Save(sidCtx(), testSID, &session.Session{AuthUserID: 99}))

	_, err := d.uc.Dashboard(sidCtx())
	gerr := asGoError(t, err)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
}

func TestDashboardSuccess(t *testing.T) {
	d := newTestUsecase(t)
	d.addActiveUser(t, 1, "jane@example.com", "Jane Doe", "Str0ngPass!")
	require.NoError(t, d.store.Save(sidCtx(), testSID, &session.Session{AuthUserID: 1}))

	out, err := d.uc.Dashboard(sidCtx())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", out.FullName)
	assert.Equal(t, "jane@example.com", out.Email)
}
