package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wepayu/internal/domain"
	"github.com/wepayu/internal/repository"
)

func TestScheduleRegistry_Predefined(t *testing.T) {
	registry := repository.NewScheduleRegistry()

	for _, desc := range []string{"semanal 5", "semanal 2 5", "mensal $"} {
		_, ok := registry.Get(desc)
		assert.True(t, ok, desc)
	}
	assert.Empty(t, registry.Custom())
	assert.ErrorIs(t, registry.Register(domain.MustParseSchedule("semanal 5")), domain.ErrScheduleAlreadyExists)
}

func TestScheduleRegistry_CustomLifecycle(t *testing.T) {
	registry := repository.NewScheduleRegistry()

	require.NoError(t, registry.Register(domain.MustParseSchedule("mensal 1")))
	require.NoError(t, registry.Register(domain.MustParseSchedule("semanal 4 3")))
	assert.ErrorIs(t, registry.Register(domain.MustParseSchedule("mensal 1")), domain.ErrScheduleAlreadyExists)

	custom := registry.Custom()
	require.Len(t, custom, 2)
	assert.Equal(t, "mensal 1", custom[0].Description())
	assert.Equal(t, "semanal 4 3", custom[1].Description())

	registry.Unregister("mensal $")
	_, ok := registry.Get("mensal $")
	assert.True(t, ok)

	registry.Unregister("mensal 1")
	_, ok = registry.Get("mensal 1")
	assert.False(t, ok)

	registry.Reset()
	assert.Empty(t, registry.Custom())

	registry.Restore(custom)
	assert.Len(t, registry.Custom(), 2)
}
