package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"employee-api/internal/config"
	"employee-api/internal/domains/employee"
	"employee-api/pkg/container"
	"employee-api/pkg/logger"
)

// seeder nạp danh sách nhân viên mặc định vào store đang cấu hình.
// Không làm gì nếu bảng đã có dữ liệu.
func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "Timeout for the seed operation")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("development", "")
		log.Fatal().Err(err).Msg("❌ Failed to load config")
	}
	logger.Init(cfg.App.Environment, cfg.App.LogFile)

	// container không tự seed, seeder tự gọi để có kết quả rõ ràng
	cfg.Seed.OnStart = false

	c, err := container.NewContainer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize container")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	n, err := c.EmployeeService.SeedIfEmpty(ctx, employee.DefaultSeed)
	cancel()
	c.Cleanup()

	if err != nil {
		logger.Error("❌ Seed failed", err)
		os.Exit(1)
	}

	log.Info().Int("inserted", n).Str("driver", cfg.Store.Driver).Msg("✅ Seed finished")
}
