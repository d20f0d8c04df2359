package db

import (
	"testing"

	"github.com/roselab/warehouse/internal/config"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDb 連接測試資料庫, 未設定時跳過整個suite
func openTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.GetConfig()
	if cfg.DbHost == "" {
		t.Skip("POSTGRES_HOST not set, skipping database tests")
	}

	dbName := cfg.DbNameTest
	if dbName == "" {
		dbName = cfg.DbName
	}

	conn, err := GetDbConn(dbName, cfg.DbHost, cfg.DbPort, cfg.DbUser, cfg.DbPas)
	require.NoError(t, err)
	return conn
}

// cleanTables 清空資料表, order_items有外鍵要先刪
func cleanTables(db *gorm.DB) {
	db.Exec("DELETE FROM order_items")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM products")
}
