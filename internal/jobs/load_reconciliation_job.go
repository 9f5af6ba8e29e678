package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// LoadReconciliationJob periodically verifies that the stored current loads
// agree with the sum of outstanding placements, and that every load stays
// within the 0..capacity bound. The job only reads; drift means a bug or
// manual intervention and is reported, not repaired.
type LoadReconciliationJob struct {
	db       *gorm.DB
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// loadDrift is one warehouse whose stored load disagrees with its
// outstanding placements.
type loadDrift struct {
	WarehouseID   string
	Name          string
	CurrentLoad   int
	TotalCapacity int
	PlacedWeight  int
}

// boundViolation is one capacity node whose load left the 0..capacity range.
type boundViolation struct {
	Level         string
	ID            string
	Name          string
	CurrentLoad   int
	TotalCapacity int
}

// NewLoadReconciliationJob creates the reconciliation job with the given
// cron schedule, for example "0 * * * * *" for once a minute.
func NewLoadReconciliationJob(db *gorm.DB, schedule string, logger *slog.Logger) *LoadReconciliationJob {
	return &LoadReconciliationJob{
		db:       db,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "load_reconciliation_job"),
	}
}

// Start schedules the reconciliation run.
func (j *LoadReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Load reconciliation run failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Load reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *LoadReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Load reconciliation job stopped")
}

// Run executes a single reconciliation pass. Exposed so the composition
// root can trigger an immediate check at startup.
func (j *LoadReconciliationJob) Run(ctx context.Context) error {
	drifts, err := j.findDrifts(ctx)
	if err != nil {
		return err
	}
	for _, drift := range drifts {
		j.logger.ErrorContext(ctx, "Warehouse load diverged from outstanding placements",
			"warehouseId", drift.WarehouseID,
			"name", drift.Name,
			"currentLoad", drift.CurrentLoad,
			"placedWeight", drift.PlacedWeight,
		)
	}

	violations, err := j.findBoundViolations(ctx)
	if err != nil {
		return err
	}
	for _, violation := range violations {
		j.logger.ErrorContext(ctx, "Capacity load is out of bounds",
			"level", violation.Level,
			"id", violation.ID,
			"name", violation.Name,
			"currentLoad", violation.CurrentLoad,
			"totalCapacity", violation.TotalCapacity,
		)
	}

	if len(drifts) == 0 && len(violations) == 0 {
		j.logger.DebugContext(ctx, "Load reconciliation pass clean")
	}
	return nil
}

func (j *LoadReconciliationJob) findDrifts(ctx context.Context) ([]loadDrift, error) {
	var drifts []loadDrift
	err := j.db.WithContext(ctx).Raw(`
		SELECT w.id AS warehouse_id,
		       w.name,
		       w.current_load,
		       w.total_capacity,
		       COALESCE(SUM(p.weight), 0) AS placed_weight
		FROM warehouses w
		LEFT JOIN placements p ON p.warehouse_id = w.id
		GROUP BY w.id, w.name, w.current_load, w.total_capacity
		HAVING w.current_load <> COALESCE(SUM(p.weight), 0)`,
	).Scan(&drifts).Error
	return drifts, err
}

func (j *LoadReconciliationJob) findBoundViolations(ctx context.Context) ([]boundViolation, error) {
	var violations []boundViolation
	err := j.db.WithContext(ctx).Raw(`
		SELECT 'warehouse' AS level, id, name, current_load, total_capacity
		FROM warehouses
		WHERE current_load < 0 OR current_load > total_capacity
		UNION ALL
		SELECT 'section' AS level, id, name, current_load, total_capacity
		FROM sections
		WHERE current_load < 0 OR current_load > total_capacity
		UNION ALL
		SELECT 'pile' AS level, id, name, current_load, total_capacity
		FROM piles
		WHERE current_load < 0 OR current_load > total_capacity`,
	).Scan(&violations).Error
	return violations, err
}
