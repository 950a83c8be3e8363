package db

import (
	"os"
	"path/filepath"
	"testing"

	"VidTube.com/config"
)

// setupTestDB 连不上MySQL就跳过 不让集成测试绑死CI
func setupTestDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}

	originalDir, _ := os.Getwd()
	projectRoot := filepath.Join(originalDir, "../../")
	os.Chdir(projectRoot)
	defer os.Chdir(originalDir)

	config.Init()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("Database connection failed, skipping test: %v", r)
		}
	}()
	Init()

	sqlDB, err := DB.DB()
	if err != nil {
		t.Skipf("Failed to get sql.DB, skipping test: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("Database unreachable, skipping test: %v", err)
	}
}
