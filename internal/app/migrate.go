package app

import (
	"context"
	"fmt"

	"go-certtrack/internal/activity"
	"go-certtrack/internal/certificate"
	"go-certtrack/internal/company"
	"go-certtrack/internal/rbac"
	"go-certtrack/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// outboxDDL is kept as SQL because the outbox is written through database/sql.
const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id             UUID PRIMARY KEY,
	request_id     VARCHAR(100),
	aggregate_type VARCHAR(50)  NOT NULL,
	aggregate_id   UUID         NOT NULL,
	event_type     VARCHAR(100) NOT NULL,
	topic          VARCHAR(200) NOT NULL,
	payload        JSONB        NOT NULL,
	status         VARCHAR(20)  NOT NULL DEFAULT 'pending',
	retry_count    INT          NOT NULL DEFAULT 0,
	next_retry_at  TIMESTAMPTZ,
	error_message  TEXT,
	processed_at   TIMESTAMPTZ,
	created_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_pending
	ON outbox_events (status, next_retry_at, created_at);
`

// Migrate creates or updates every table the services use. Order matters:
// users reference roles and certificates reference users.
func Migrate(ctx context.Context, db *gorm.DB) error {
	log := zap.L().Named("app.migrate")

	models := []any{
		&company.Company{},
		&rbac.Role{},
		&rbac.RolePermission{},
		&user.User{},
		&certificate.Certificate{},
		&activity.CertificateActivity{},
	}
	tx := db.WithContext(ctx)
	for _, m := range models {
		if err := tx.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	if err := tx.Exec(outboxDDL).Error; err != nil {
		return fmt.Errorf("migrate outbox_events: %w", err)
	}

	log.Info("schema migrated", zap.Int("models", len(models)))
	return nil
}
