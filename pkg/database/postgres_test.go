package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/hackathon-portal-api/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 5432, User: "portal", Password: "secret", Name: "hackathon_portal", SSLMode: "disable"})
	assert.Equal(t, "host=db port=5432 user=portal password=secret dbname=hackathon_portal sslmode=disable", dsn)
}
