package checklist_test

import (
	"os"
	"path/filepath"
	"testing"

	"carcheck/internal/core/domain/model/checklist"
	"carcheck/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := checklist.DefaultCatalog()

	require.NoError(t, catalog.Validate())
	assert.Len(t, catalog.Categories, 6)
	assert.Equal(t, 28, catalog.TotalPoints())
	assert.Len(t, catalog.PointNames(), 28)
}

func TestCatalog_Validate(t *testing.T) {
	t.Run("empty_catalog_is_rejected", func(t *testing.T) {
		err := checklist.Catalog{}.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("duplicate_point_names_are_rejected", func(t *testing.T) {
		catalog := checklist.Catalog{Categories: []checklist.Category{
			{ID: "a", Title: "A", Points: []string{"Same point"}},
			{ID: "b", Title: "B", Points: []string{"Same point"}},
		}}

		err := catalog.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_point_name_is_rejected", func(t *testing.T) {
		catalog := checklist.Catalog{Categories: []checklist.Category{
			{ID: "a", Title: "A", Points: []string{""}},
		}}

		require.Error(t, catalog.Validate())
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("loads_valid_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		content := `{"categories":[{"categoryId":"engine","title":"Engine","points":["Engine start and idle"]}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		catalog, err := checklist.LoadCatalog(path)

		require.NoError(t, err)
		assert.Equal(t, 1, catalog.TotalPoints())
		assert.Equal(t, "engine", catalog.Categories[0].ID)
	})

	t.Run("missing_file_fails", func(t *testing.T) {
		_, err := checklist.LoadCatalog(filepath.Join(t.TempDir(), "absent.json"))

		require.Error(t, err)
	})

	t.Run("invalid_json_fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := checklist.LoadCatalog(path)

		require.Error(t, err)
	})
}
