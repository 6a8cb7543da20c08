package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunScriptStoreContract runs a suite of tests to verify that a ScriptStore implementation
// adheres to the defined interface contract.
func RunScriptStoreContract(t *testing.T, store ScriptStore) {
	ctx := context.Background()
	assetID := "contract-script-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		payload := []byte{0x01, 0x00, 0xff, 0x7f}

		err := store.Save(ctx, assetID, payload)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, assetID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, payload, loaded)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, assetID, []byte("v1")))
		require.NoError(t, store.Save(ctx, assetID, []byte("v2")))

		loaded, err := store.Load(ctx, assetID)
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), loaded)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+assetID)
		assert.ErrorIs(t, err, domain.ErrScriptNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, assetID, []byte("doomed")))

		err := store.Delete(ctx, assetID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, assetID)
		assert.ErrorIs(t, err, domain.ErrScriptNotFound, "Load after Delete should return ErrScriptNotFound")

		assert.NoError(t, store.Delete(ctx, assetID), "Deleting twice is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := assetID + "-1"
		id2 := assetID + "-2"
		_ = store.Save(ctx, id1, []byte("a"))
		_ = store.Save(ctx, id2, []byte("b"))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		assets, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, assets, id1)
		assert.Contains(t, assets, id2)
	})
}
