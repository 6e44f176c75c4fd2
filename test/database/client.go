// Package database provides a ready-made test client wrapper.
package database

import (
	"testing"

	"github.com/reportline/reportline/pkg/database"
	"github.com/reportline/reportline/test/util"
)

// NewTestClient creates a test database client backed by an isolated schema.
// Cleanup (schema drop and connection close) happens when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
