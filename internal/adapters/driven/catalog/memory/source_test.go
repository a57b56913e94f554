package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

func testSnapshot() domain.Snapshot {
	price := int64(1250)
	return domain.Snapshot{
		Categories: []domain.Category{
			{ID: "cat-1", Name: "Pizza", Slug: "pizza", Priority: 1, IsActive: true},
		},
		Products: []domain.Product{
			{
				ID:       "prod-1",
				Name:     "Margherita",
				Slug:     "margherita",
				IsActive: true,
				Price:    &price,
				Tags:     []domain.TagBind{{TagID: "tag-1"}},
				CategoryBinds: []domain.CategoryBind{
					{CategoryID: "cat-1", Priority: 1},
				},
			},
		},
		Tags: []domain.Tag{
			{ID: "tag-1", Name: "Italian", Slug: "italian"},
		},
	}
}

func TestNewSource(t *testing.T) {
	source := NewSource(testSnapshot())
	require.NotNil(t, source)
}

func TestSource_Snapshot_ReturnsData(t *testing.T) {
	source := NewSource(testSnapshot())
	ctx := context.Background()

	snap, err := source.Snapshot(ctx)

	require.NoError(t, err)
	require.Len(t, snap.Categories, 1)
	require.Len(t, snap.Products, 1)
	require.Len(t, snap.Tags, 1)
	assert.Equal(t, "cat-1", snap.Categories[0].ID)
	assert.Equal(t, "prod-1", snap.Products[0].ID)
	assert.Equal(t, "tag-1", snap.Tags[0].ID)
}

func TestSource_Snapshot_Empty(t *testing.T) {
	source := NewSource(domain.Snapshot{})
	ctx := context.Background()

	snap, err := source.Snapshot(ctx)

	require.NoError(t, err)
	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Tags)
}

func TestSource_Snapshot_DataIsolation(t *testing.T) {
	source := NewSource(testSnapshot())
	ctx := context.Background()

	first, err := source.Snapshot(ctx)
	require.NoError(t, err)

	// Mutate everything reachable from the returned copy.
	first.Categories[0].Name = "Changed"
	first.Products[0].Name = "Changed"
	*first.Products[0].Price = 9999
	first.Products[0].Tags[0].TagID = "tag-changed"
	first.Products[0].CategoryBinds[0].CategoryID = "cat-changed"
	first.Tags[0].Name = "Changed"

	// The stored snapshot must be untouched.
	second, err := source.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pizza", second.Categories[0].Name)
	assert.Equal(t, "Margherita", second.Products[0].Name)
	assert.Equal(t, int64(1250), *second.Products[0].Price)
	assert.Equal(t, "tag-1", second.Products[0].Tags[0].TagID)
	assert.Equal(t, "cat-1", second.Products[0].CategoryBinds[0].CategoryID)
	assert.Equal(t, "Italian", second.Tags[0].Name)
}

func TestSource_SetSnapshot_Replaces(t *testing.T) {
	source := NewSource(testSnapshot())
	ctx := context.Background()

	source.SetSnapshot(domain.Snapshot{
		Products: []domain.Product{
			{ID: "prod-2", Name: "Pepperoni", IsActive: true},
		},
	})

	snap, err := source.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Categories)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "prod-2", snap.Products[0].ID)
}

func TestSource_Close(t *testing.T) {
	source := NewSource(testSnapshot())
	ctx := context.Background()

	err := source.Close()
	require.NoError(t, err)

	_, err = source.Snapshot(ctx)
	assert.ErrorIs(t, err, domain.ErrSourceClosed)
}

func TestSource_Close_Idempotent(t *testing.T) {
	source := NewSource(testSnapshot())

	assert.NoError(t, source.Close())
	assert.NoError(t, source.Close())
}

func TestSource_ContextCancellation(t *testing.T) {
	source := NewSource(testSnapshot())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Snapshot reads are local and complete even with a cancelled context.
	snap, err := source.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Products, 1)
}

func TestSource_Concurrency_ReadAndReplace(t *testing.T) {
	source := NewSource(testSnapshot())
	ctx := context.Background()

	var wg sync.WaitGroup
	numGoroutines := 50

	wg.Add(numGoroutines * 2)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			_, _ = source.Snapshot(ctx)
		}()
		go func() {
			defer wg.Done()
			source.SetSnapshot(testSnapshot())
		}()
	}
	wg.Wait()

	// Should not panic or deadlock, and still serve a coherent snapshot.
	snap, err := source.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Products, 1)
}
