package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/guilhermemendeslima/clickcell-system/internal/config"
	"github.com/guilhermemendeslima/clickcell-system/internal/infra"
	"github.com/guilhermemendeslima/clickcell-system/internal/seed"
)

// newTestDB opens a fresh in-memory store with the full demo dataset loaded.
// Each test gets its own database so mutations never leak across tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := infra.NewDatabase(dsn)
	require.NoError(t, err)
	require.NoError(t, seed.Run(db))
	return db
}

func newTestCfg() *config.Config {
	return &config.Config{
		Port:               8000,
		Env:                "development",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		DemoPassword:       "123456",
		LoginDelayMS:       0,
	}
}
