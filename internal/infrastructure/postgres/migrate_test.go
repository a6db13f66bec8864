package postgres

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_Ordena(t *testing.T) {
	fsys := fstest.MapFS{
		"m/002_b.sql":  {Data: []byte("SELECT 2")},
		"m/001_a.sql":  {Data: []byte("SELECT 1")},
		"m/README.txt": {Data: []byte("ignorar")},
	}
	ms, err := loadMigrations(fsys, "m")
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, "001_a", ms[0].Version)
	assert.Equal(t, "SELECT 2", ms[1].SQL)
}

func TestMigrations_Embebidas(t *testing.T) {
	ms, err := Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, ms)
	assert.Equal(t, "001_parser_config", ms[0].Version)
	assert.Contains(t, ms[0].SQL, "llm_template_list")
	// entity.Parser.DynamicParser es bool: la columna debe escanear como tal.
	assert.Regexp(t, `dynamic_parser\s+BOOLEAN\s+NOT NULL DEFAULT FALSE`, ms[0].SQL)
}

func TestMigrate_SaltaAplicadas(t *testing.T) {
	mock := newMock(t)
	ms := []Migration{
		{Version: "001_a", SQL: "CREATE TABLE a (id INT)"},
		{Version: "002_b", SQL: "CREATE TABLE b (id INT)"},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("001_a").
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("002_b").
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE b").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("INSERT INTO schema_migrations").WithArgs("002_b").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	applied, err := Migrate(context.Background(), mock, ms)
	require.NoError(t, err)
	assert.Equal(t, []string{"002_b"}, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
