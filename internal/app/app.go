package app

import (
	"context"
	"database/sql"

	"go-certtrack/internal/config"
	"go-certtrack/internal/shared/connection"
	"go-certtrack/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections of one process.
type Infra struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.SQLDB != nil {
		_ = i.SQLDB.Close()
	}
}

func connectDB(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// BuildApp connects the backing services and mounts every module on router.
// When migrate is set the schema is brought up to date first.
func BuildApp(ctx context.Context, router *gin.Engine, cfg *config.Config, migrate bool) (*Infra, error) {
	logger := zap.L().Named("app")

	gormDB, sqlDB, err := connectDB(cfg)
	if err != nil {
		return nil, err
	}
	infra := &Infra{GormDB: gormDB, SQLDB: sqlDB}

	if migrate {
		if err := Migrate(ctx, gormDB); err != nil {
			infra.Close()
			return nil, err
		}
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, cfg.DB.MaxRetries)
	if err != nil {
		infra.Close()
		return nil, err
	}
	infra.Redis = rdb

	var proofs storage.ProofStorage
	if cfg.S3.Enabled() {
		s3Store, err := storage.NewS3(ctx, cfg.S3, logger)
		if err != nil {
			infra.Close()
			return nil, err
		}
		proofs = s3Store
	} else {
		logger.Warn("S3_BUCKET not set, proof uploads disabled")
	}

	if err := registerModules(router, cfg, infra, proofs, logger); err != nil {
		infra.Close()
		return nil, err
	}
	return infra, nil
}
