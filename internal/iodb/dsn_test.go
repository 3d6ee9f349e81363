package iodb

import (
	"testing"

	"github.com/gnames/chemdb/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "chem",
		Password: "p@ss:w/rd",
		Database: "chemdb",
		SSLMode:  "disable",
	}
	pc, err := pgxpool.ParseConfig(dsn(cfg))
	require.NoError(t, err)
	assert.Equal(t, "db.local", pc.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pc.ConnConfig.Port)
	assert.Equal(t, "chem", pc.ConnConfig.User)
	assert.Equal(t, "p@ss:w/rd", pc.ConnConfig.Password)
	assert.Equal(t, "chemdb", pc.ConnConfig.Database)
}
