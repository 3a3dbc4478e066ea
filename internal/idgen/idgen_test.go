package idgen_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/bkromhout/balances/internal/database"
	"github.com/bkromhout/balances/internal/idgen"
	"github.com/bkromhout/balances/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "balances.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestNextIDSequential(t *testing.T) {
	f := idgen.NewFactory(idgen.NewMemoryStore())

	var prev int64
	for i := 0; i < 100; i++ {
		id, err := f.NextID(models.TypeBalance)
		require.NoError(t, err)
		assert.Greater(t, id, prev, "ids must be strictly increasing")
		prev = id
	}
	assert.Equal(t, int64(100), prev)
}

func TestNextIDPerTypeIndependence(t *testing.T) {
	f := idgen.NewFactory(idgen.NewMemoryStore())

	b, err := f.NextID(models.TypeBalance)
	require.NoError(t, err)
	tx, err := f.NextID(models.TypeTransaction)
	require.NoError(t, err)

	// Each entity type has its own counter starting at 1.
	assert.Equal(t, int64(1), b)
	assert.Equal(t, int64(1), tx)
}

func TestNextIDConcurrent(t *testing.T) {
	f := idgen.NewFactory(idgen.NewMemoryStore())

	const workers = 4
	const perWorker = 250

	ids := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id, err := f.NextID(models.TypeTransaction)
				assert.NoError(t, err)
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers*perWorker)
	for id := range ids {
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestGormStoreDurable(t *testing.T) {
	db := openTestDB(t)

	f := idgen.NewFactory(idgen.NewGormStore(db))
	for want := int64(1); want <= 3; want++ {
		id, err := f.NextID(models.TypeBalance)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}

	// A fresh factory over the same database continues where the old one
	// left off, as after a process restart.
	f2 := idgen.NewFactory(idgen.NewGormStore(db))
	id, err := f2.NextID(models.TypeBalance)
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestGormStoreConcurrent(t *testing.T) {
	db := openTestDB(t)
	f := idgen.NewFactory(idgen.NewGormStore(db))

	const workers = 2
	const perWorker = 25

	ids := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id, err := f.NextID(models.TypeCategory)
				assert.NoError(t, err)
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers*perWorker)
	for id := range ids {
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}
