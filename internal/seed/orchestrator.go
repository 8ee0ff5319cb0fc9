package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"avialab/flightdeck/internal/config"
	"avialab/flightdeck/internal/logging"
	"avialab/flightdeck/internal/metrics"

	"github.com/jmoiron/sqlx"
)

// runLog is the ordered progress log carried through a seeding run and
// returned to the caller. Phases append; nothing is shared between runs.
type runLog struct {
	entries []string
}

func (l *runLog) add(msg string) {
	l.entries = append(l.entries, msg)
}

func (l *runLog) addf(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

// Result reports a completed (or failed) seeding run.
type Result struct {
	Log []string
}

// Orchestrator sequences the four seeding phases: EnsureSchema,
// ClearTables, SeedTransaction and Commit. Schema and truncation run
// outside the transaction; every insert runs inside it.
type Orchestrator struct {
	db      *sqlx.DB
	cfg     config.Config
	metrics *metrics.MetricsRegistry
	now     func() time.Time
	newRand func() *rand.Rand
}

func NewOrchestrator(db *sqlx.DB, cfg config.Config, reg *metrics.MetricsRegistry) *Orchestrator {
	return &Orchestrator{
		db:      db,
		cfg:     cfg,
		metrics: reg,
		now:     time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Run executes one full truncate-then-reseed cycle. The returned Result
// always carries the progress log accumulated up to the point of failure.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	start := o.now()
	log := &runLog{}

	res, err := o.run(ctx, log)

	if o.metrics != nil {
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		o.metrics.SeedRunsTotal.WithLabelValues(outcome).Inc()
		o.metrics.SeedRunDuration.Observe(time.Since(start).Seconds())
	}
	return res, err
}

func (o *Orchestrator) run(ctx context.Context, log *runLog) (*Result, error) {
	rng := o.newRand()
	gen := NewDataGenerator(rng)
	now := o.now().UTC()

	log.add("Starting: Ensuring tables exist...")
	if err := EnsureSchema(ctx, o.db); err != nil {
		logging.Error("Seed schema phase failed", "error", err.Error())
		return &Result{Log: log.entries}, fmt.Errorf("failed to create necessary tables: %w", err)
	}
	log.add("Completed: Table check/creation finished.")

	log.add("Starting: Clearing tables...")
	if err := ClearTables(ctx, o.db); err != nil {
		logging.Error("Seed truncation phase failed", "error", err.Error())
		return &Result{Log: log.entries}, fmt.Errorf("failed to clear tables before seeding: %w", err)
	}
	log.add("Completed: Tables truncated.")

	log.add("Starting: Seeding data transaction...")
	tx, err := o.db.BeginTxx(ctx, nil)
	if err != nil {
		logging.Error("Seed transaction begin failed", "error", err.Error())
		return &Result{Log: log.entries}, fmt.Errorf("begin seed transaction: %w", err)
	}

	if err := o.seedAll(ctx, tx, rng, gen, now, log); err != nil {
		logging.Error("Seed insertion failed, rolling back", "error", err.Error())
		if rbErr := tx.Rollback(); rbErr != nil {
			logging.Error("Seed transaction rollback failed", "error", rbErr.Error())
		}
		return &Result{Log: log.entries}, err
	}

	if err := commit(tx, log); err != nil {
		return &Result{Log: log.entries}, err
	}

	return &Result{Log: log.entries}, nil
}

// commit finishes the seed transaction. A nil transaction is unexpected
// here and downgraded to a warning rather than a silent success.
func commit(tx *sqlx.Tx, log *runLog) error {
	log.add("Attempting to commit data transaction...")
	if tx == nil {
		logging.Warn("No active seed transaction to commit")
		log.add("Warning: No active transaction to commit (might indicate an issue).")
		return nil
	}
	if err := tx.Commit(); err != nil {
		logging.Error("Seed transaction commit failed", "error", err.Error())
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	log.add("Completed: Data seeding transaction committed.")
	return nil
}

func (o *Orchestrator) seedAll(ctx context.Context, tx *sqlx.Tx, rng *rand.Rand, gen *DataGenerator, now time.Time, log *runLog) error {
	refs, err := seedReference(ctx, tx, log)
	if err != nil {
		return err
	}

	flights, err := seedFlights(ctx, tx, rng, gen, refs, o.cfg.SeedFlights, now, log)
	if err != nil {
		return err
	}

	userIDs, err := seedUsers(ctx, tx, gen, o.cfg.SeedUsers, o.cfg.BcryptCost, log)
	if err != nil {
		return err
	}

	passengerIDs, err := seedPassengers(ctx, tx, gen, o.cfg.SeedPassengers, now, log)
	if err != nil {
		return err
	}

	bookings, tickets, err := seedBookings(ctx, tx, rng, gen, userIDs, passengerIDs, flights, o.cfg.SeedBookings, log)
	if err != nil {
		return err
	}

	if o.metrics != nil {
		o.metrics.SeedRowsTotal.WithLabelValues("airlines").Add(float64(len(refs.AirlineIDs)))
		o.metrics.SeedRowsTotal.WithLabelValues("airports").Add(float64(len(refs.AirportIDs)))
		o.metrics.SeedRowsTotal.WithLabelValues("aircraft").Add(float64(len(refs.AircraftIDs)))
		o.metrics.SeedRowsTotal.WithLabelValues("flights").Add(float64(len(flights.statusByID)))
		o.metrics.SeedRowsTotal.WithLabelValues("users").Add(float64(len(userIDs)))
		o.metrics.SeedRowsTotal.WithLabelValues("passengers").Add(float64(len(passengerIDs)))
		o.metrics.SeedRowsTotal.WithLabelValues("bookings").Add(float64(bookings))
		o.metrics.SeedRowsTotal.WithLabelValues("tickets").Add(float64(tickets))
	}
	return nil
}
