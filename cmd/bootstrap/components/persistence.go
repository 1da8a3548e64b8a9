package components

import (
	"estate-booking/internal/infra/memstore"
	"estate-booking/internal/infra/readstore"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/infra/uow"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/usecase/queries"
	"estate-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule wires the unit of work and read stores for driver.
// The postgres variant expects a *pgxpool.Pool in the graph.
func PersistenceModule(driver string) fx.Option {
	if driver == config.StoreDriverMemory {
		return memoryModule
	}
	return postgresModule
}

var postgresModule = fx.Module("persistence/postgres",
	baseOption,
	readstoreModule,
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Project
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProjectReadQueries)),
		),
		fx.Annotate(
			readstore.NewProjectReadStore,
			fx.As(new(queries.ProjectReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Task
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TaskReadQueries)),
		),
		fx.Annotate(
			readstore.NewTaskReadStore,
			fx.As(new(queries.TaskReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var memoryModule = fx.Module("persistence/memory",
	fx.Provide(
		memstore.NewStore,
		fx.Annotate(
			memstore.NewUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			memstore.NewProjectReadStore,
			fx.As(new(queries.ProjectReadStore)),
		),
		fx.Annotate(
			memstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			memstore.NewTaskReadStore,
			fx.As(new(queries.TaskReadStore)),
		),
		fx.Annotate(
			memstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
