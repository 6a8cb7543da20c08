package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/hexrune/pkg/adapters/memory"
	"github.com/aretw0/hexrune/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunScriptStoreContract(t, store)
}

func TestMemoryStore_CopiesOnReadAndWrite(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	data := []byte{1, 2, 3}
	require.NoError(t, store.Save(ctx, "door", data))
	data[0] = 9

	loaded, err := store.Load(ctx, "door")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, loaded)

	loaded[1] = 9
	again, _ := store.Load(ctx, "door")
	assert.Equal(t, []byte{1, 2, 3}, again)
}
