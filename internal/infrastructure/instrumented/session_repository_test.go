package instrumented_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/instrumented"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
)

type observation struct {
	op  string
	err error
}

type fakeObserver struct {
	got []observation
}

func (f *fakeObserver) SessionOp(op string, _ time.Time, err error) {
	f.got = append(f.got, observation{op: op, err: err})
}

func TestSessionRepository_RegistraCadaOperacion(t *testing.T) {
	obs := &fakeObserver{}
	repo := instrumented.NewSessionRepository(memory.NewSessionRepository(), obs)
	ctx := context.Background()

	s := &entity.Session{ID: "s1", ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, repo.Save(ctx, s))
	_, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, "s1"))

	require.Len(t, obs.got, 3)
	assert.Equal(t, []string{"save", "get", "delete"}, []string{obs.got[0].op, obs.got[1].op, obs.got[2].op})
	for _, o := range obs.got {
		assert.NoError(t, o.err)
	}
}

func TestSessionRepository_RegistraError(t *testing.T) {
	obs := &fakeObserver{}
	repo := instrumented.NewSessionRepository(memory.NewSessionRepository(), obs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Get(ctx, "s1")
	require.Error(t, err)
	require.Len(t, obs.got, 1)
	assert.True(t, errors.Is(obs.got[0].err, context.Canceled))
}
