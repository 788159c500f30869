package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrdersByVersion(t *testing.T) {
	files := fstest.MapFS{
		"002_indexes.sql": {Data: []byte("CREATE INDEX a ON t (x);")},
		"001_init.sql":    {Data: []byte("CREATE TABLE t (x INT);")},
		"README.md":       {Data: []byte("ignored")},
	}

	migrations, err := Load(files)
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "001", migrations[0].Version)
	assert.Equal(t, "001_init.sql", migrations[0].Name)
	assert.Equal(t, "002", migrations[1].Version)
}

func TestEmbeddedMigrationsCreateSnapshotTables(t *testing.T) {
	m := NewMigrator(nil, zerolog.Nop())

	migrations, err := Load(m.files)
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	for _, table := range []string{"users", "courses", "course_schedule", "enrollments", "payments", "announcements"} {
		assert.Contains(t, migrations[0].SQL, "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
}
