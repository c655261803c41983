package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microscan/internal/model"
)

func setupTestRepo(t *testing.T) *ScanRepository {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewScanRepository(db)
}

func testScan(source, status string) *model.Scan {
	return &model.Scan{
		Source:     source,
		Status:     status,
		RiskScore:  12.5,
		TotalCount: 3,
		MinSizeNM:  100, AvgSizeNM: 200, MaxSizeNM: 300,
		MinCount: 1, AvgCount: 1, MaxCount: 1,
		Thumbnail: []byte{0xFF, 0xD8, 0xFF},
	}
}

func TestScanRepositoryInsertAndGetAll(t *testing.T) {
	repo := setupTestRepo(t)

	id, err := repo.Insert(testScan("upload", "LOW RISK"))
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	scans, err := repo.GetAll(&model.ScanFilter{})
	require.NoError(t, err)
	require.Len(t, scans, 1)

	got := scans[0]
	assert.Equal(t, "upload", got.Source)
	assert.Equal(t, "LOW RISK", got.Status)
	assert.InDelta(t, 12.5, got.RiskScore, 1e-9)
	assert.Equal(t, 3, got.TotalCount)
	assert.InDelta(t, 200.0, got.AvgSizeNM, 1e-9)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestScanRepositoryFilters(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.Insert(testScan("upload", "LOW RISK"))
	require.NoError(t, err)
	_, err = repo.Insert(testScan("camera", "HIGH RISK"))
	require.NoError(t, err)
	_, err = repo.Insert(testScan("camera", "LOW RISK"))
	require.NoError(t, err)

	scans, err := repo.GetAll(&model.ScanFilter{Source: "camera"})
	require.NoError(t, err)
	assert.Len(t, scans, 2)

	scans, err = repo.GetAll(&model.ScanFilter{Source: "camera", Status: "HIGH RISK"})
	require.NoError(t, err)
	assert.Len(t, scans, 1)

	count, err := repo.GetTotalCount(&model.ScanFilter{Status: "LOW RISK"})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestScanRepositoryPagination(t *testing.T) {
	repo := setupTestRepo(t)

	for i := 0; i < 5; i++ {
		_, err := repo.Insert(testScan("upload", "LOW RISK"))
		require.NoError(t, err)
	}

	page, err := repo.GetAll(&model.ScanFilter{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, page, 1)

	// An offset with no limit must still be valid SQL.
	rest, err := repo.GetAll(&model.ScanFilter{Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rest, 3)
}

func TestScanRepositoryThumbnail(t *testing.T) {
	repo := setupTestRepo(t)

	id, err := repo.Insert(testScan("example", "UNKNOWN"))
	require.NoError(t, err)

	thumb, err := repo.GetThumbnail(id)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, thumb)

	missing, err := repo.GetThumbnail(id + 100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestScanRepositoryClear(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.Insert(testScan("upload", "LOW RISK"))
	require.NoError(t, err)

	require.NoError(t, repo.Clear())

	count, err := repo.GetTotalCount(&model.ScanFilter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}
