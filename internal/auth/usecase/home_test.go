package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeAnonymous(t *testing.T) {
	d := newTestUsecase(t)

	out, err := d.uc.Home(sidCtx())
	require.NoError(t, err)
	assert.False(t, out.Authenticated)
	assert.Empty(t, out.FullName)
	assert.Empty(t, out.Flash)
}

func TestHomeFlashShowsOnce(t *testing.T) {
	d := newTestUsecase(t)
	d.addActiveUser(t, 1, "jane@example.com", "Jane Doe", "Str0ngPass!")

	_, err := d.uc.Login(sidCtx(), LoginInput{Email: "jane@example.com", Password: "Str0ngPass!"})
	require.NoError(t, err)

	out, err := d.uc.Home(sidCtx())
	require.NoError(t, err)
	assert.True(t, out.Authenticated)
	assert.Equal(t, "Jane Doe", out.FullName)
	assert.Equal(t, "Welcome back, Jane Doe!", out.Flash)

	out, err = d.uc.Home(sidCtx())
	require.NoError(t, err)
	assert.True(t, out.Authenticated)
	assert.Empty(t, out.Flash)
}
