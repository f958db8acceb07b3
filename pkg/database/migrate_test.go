package database

import (
	"testing"

	"film-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestConnString(t *testing.T) {
	got := ConnString(utils.DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		Name:     "films",
		User:     "app",
		Password: "p@ss word",
	})
	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/films?sslmode=disable", got)
}

func TestMigrateURL(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@h:5432/db?sslmode=disable":   "pgx5://u:p@h:5432/db?sslmode=disable",
		"postgresql://u:p@h:5432/db?sslmode=disable": "pgx5://u:p@h:5432/db?sslmode=disable",
		"pgx5://u:p@h:5432/db":                        "pgx5://u:p@h:5432/db",
	}
	for in, want := range tests {
		assert.Equal(t, want, migrateURL(in), in)
	}
}
