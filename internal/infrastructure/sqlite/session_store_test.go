package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/infrastructure/sqlite"
)

func TestSessionStore_GuardarYCerrar(t *testing.T) {
	_, db := newStore(t)
	sessions := sqlite.NewSessionStore(db)
	ctx := context.Background()

	cur, err := sessions.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	exp := time.Now().Add(time.Hour).Truncate(time.Millisecond)
	sess := &entity.Session{Token: "tok", UserID: 7, Name: "Ana", Email: " Ana@WMS.co ", Role: entity.RoleSupervisor, ExpiresAt: exp}
	require.NoError(t, sessions.Save(ctx, sess, "$2a$hash"))

	cur, err = sessions.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "ana@wms.co", cur.Email)
	assert.Equal(t, "Bearer", cur.TokenType)
	assert.True(t, exp.Equal(cur.ExpiresAt))

	require.NoError(t, sessions.Clear(ctx))
	cur, err = sessions.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur, "Clear cierra la sesión activa")

	creds, err := sessions.Credentials(ctx, "ANA@wms.co")
	require.NoError(t, err)
	require.NotNil(t, creds, "las credenciales en caché sobreviven al logout")
	assert.Equal(t, "$2a$hash", creds.PasswordHash)

	require.NoError(t, sessions.Activate(ctx, &creds.Session))
	cur, err = sessions.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, int64(7), cur.UserID)
}

func TestSessionStore_UnaSolaActiva(t *testing.T) {
	_, db := newStore(t)
	sessions := sqlite.NewSessionStore(db)
	ctx := context.Background()

	require.NoError(t, sessions.Save(ctx, &entity.Session{Token: "a", UserID: 1, Name: "A", Email: "a@x.co", Role: entity.RoleOperator}, "h1"))
	require.NoError(t, sessions.Save(ctx, &entity.Session{Token: "b", UserID: 2, Name: "B", Email: "b@x.co", Role: entity.RoleAdmin}, "h2"))

	cur, err := sessions.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "b@x.co", cur.Email)
}
