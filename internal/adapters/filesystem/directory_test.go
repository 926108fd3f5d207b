package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funknotes/internal/adapters/codec"
	"funknotes/internal/adapters/filesystem"
	"funknotes/internal/application"
	"funknotes/internal/domain"
)

func setupTestHome(t *testing.T) (*filesystem.Directory, *filesystem.StateStore) {
	t.Helper()

	home := t.TempDir()
	state := filesystem.NewStateStore(filepath.Join(home, filesystem.StateFileName))
	dir := filesystem.NewDirectory(filepath.Join(home, filesystem.ProjectsDirName), codec.JSON{}, state, nil)
	return dir, state
}

func TestDirectory_CreateProject(t *testing.T) {
	dir, state := setupTestHome(t)

	path, p, err := dir.CreateProject("work")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Index)
	assert.Equal(t, filepath.Join(dir.Root(), "1_work.json"), path)
	assert.FileExists(t, path)

	_, p2, err := dir.CreateProject("home")
	require.NoError(t, err)
	assert.Equal(t, 2, p2.Index)

	cfg, err := state.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.ProjectCounter)
	assert.False(t, cfg.HasPrimary())
}

func TestDirectory_CreateProjectReserved(t *testing.T) {
	dir, state := setupTestHome(t)

	_, _, err := dir.CreateProject("projects")
	assert.ErrorIs(t, err, application.ErrNameReserved)

	cfg, err := state.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.ProjectCounter, "no index allocated for a rejected name")
}

func TestDirectory_AllocateNextIndexSurvivesLostState(t *testing.T) {
	dir, state := setupTestHome(t)

	_, _, err := dir.CreateProject("a")
	require.NoError(t, err)
	_, _, err = dir.CreateProject("b")
	require.NoError(t, err)
	require.NoError(t, os.Remove(state.Path()))

	_, p, err := dir.CreateProject("c")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Index)
}

func TestDirectory_Resolve(t *testing.T) {
	dir, _ := setupTestHome(t)

	_, _, err := dir.CreateProject("work")
	require.NoError(t, err)
	homePath, _, err := dir.CreateProject("home")
	require.NoError(t, err)

	t.Run("by index", func(t *testing.T) {
		path, p, err := dir.Resolve("2")
		require.NoError(t, err)
		assert.Equal(t, homePath, path)
		assert.Equal(t, "home", p.Name)
	})

	t.Run("by name", func(t *testing.T) {
		_, p, err := dir.Resolve("work")
		require.NoError(t, err)
		assert.Equal(t, 1, p.Index)
	})

	t.Run("name match is exact", func(t *testing.T) {
		_, _, err := dir.Resolve("Work")
		assert.ErrorIs(t, err, application.ErrNotFound)
	})

	t.Run("unknown index", func(t *testing.T) {
		_, _, err := dir.Resolve("42")
		assert.ErrorIs(t, err, application.ErrNotFound)
	})
}

func TestDirectory_ResolveUsesStoredIndex(t *testing.T) {
	dir, _ := setupTestHome(t)

	// the file name prefix does not matter, only the stored index
	p := domain.NewProject("odd", 9)
	path := filepath.Join(dir.Root(), "1_odd.json")
	require.NoError(t, dir.Save(path, p))

	_, _, err := dir.Resolve("1")
	assert.ErrorIs(t, err, application.ErrNotFound)

	got, _, err := dir.Resolve("9")
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDirectory_SkipsUnreadableAndForeignFiles(t *testing.T) {
	dir, _ := setupTestHome(t)

	_, _, err := dir.CreateProject("work")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir.Root(), "0_broken.json"), []byte("{"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir.Root(), "3_other.txt"), []byte("index=3\n"), 0644))

	entries, err := dir.ListEntries()
	require.NoError(t, err)
	assert.Equal(t, []string{"0_broken.json", "1_work.json"}, entries)

	summaries, err := dir.ListProjects()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "work", summaries[0].Name)
}

func TestDirectory_ListEntriesMissingDir(t *testing.T) {
	dir, _ := setupTestHome(t)

	entries, err := dir.ListEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDirectory_RemoveEntry(t *testing.T) {
	dir, _ := setupTestHome(t)

	path, _, err := dir.CreateProject("work")
	require.NoError(t, err)

	require.NoError(t, dir.RemoveEntry(path))
	assert.NoFileExists(t, path)

	err = dir.RemoveEntry(path)
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestDirectory_ListProjectsSorted(t *testing.T) {
	dir, _ := setupTestHome(t)

	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
		_, _, err := dir.CreateProject(name)
		require.NoError(t, err)
	}

	summaries, err := dir.ListProjects()
	require.NoError(t, err)
	require.Len(t, summaries, 11)
	for i, s := range summaries {
		assert.Equal(t, i+1, s.Index)
	}
}
