package postgres

import (
	"context"
	"log/slog"

	"rental/internal/errors"
	"rental/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const bookingOverlapConstraint = "bookings_no_overlap"

// Migrate creates or updates the schema. On PostgreSQL it also installs the
// exclusion constraint that rejects overlapping bookings per property, so the
// calendar invariant holds even for writers that bypass the application.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate models")
	}

	if db.Dialector.Name() != "postgres" {
		logger.Info("Skipping overlap constraint for non-PostgreSQL dialect", slog.String("dialect", db.Dialector.Name()))

		return nil
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return errors.Wrap(err, "failed to enable btree_gist")
	}

	var count int64
	if err := db.Raw("SELECT count(*) FROM pg_constraint WHERE conname = ?", bookingOverlapConstraint).Scan(&count).Error; err != nil {
		return errors.Wrap(err, "failed to inspect booking constraints")
	}
	if count > 0 {
		logger.Debug("Booking overlap constraint already present")

		return nil
	}

	stmt := `ALTER TABLE bookings ADD CONSTRAINT ` + bookingOverlapConstraint + `
		EXCLUDE USING gist (property_id WITH =, daterange(start_date, end_date, '[]') WITH &&)`
	if err := db.Exec(stmt).Error; err != nil {
		return errors.Wrap(err, "failed to add booking overlap constraint")
	}

	logger.Info("Added booking overlap constraint", slog.String("constraint", bookingOverlapConstraint))

	return nil
}
