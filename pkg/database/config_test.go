package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alijeyrad/crm_backend/config"
)

func TestDSN(t *testing.T) {
	cfg := FromCentralConfig(config.DatabaseConfig{
		Host:     "db",
		User:     "crm",
		Password: "s3cret",
		DBName:   "crm",
	})
	assert.Equal(t, "host=db port=5432 user=crm password=s3cret dbname=crm sslmode=disable", cfg.DSN())
}

func TestDSNQuotesPassword(t *testing.T) {
	assert.Equal(t, "''", quoteDSNValue(""))
	assert.Equal(t, `'a b'`, quoteDSNValue("a b"))
	assert.Equal(t, `'it\'s'`, quoteDSNValue("it's"))
}
