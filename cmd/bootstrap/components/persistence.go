package components

import (
	"room-reservation/internal/handler"
	"room-reservation/internal/infra/readstore"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/infra/uow"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	NewPinger,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Location
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LocationReadQueries)),
		),
		fx.Annotate(
			readstore.NewLocationReadStore,
			fx.As(new(queries.LocationReadStore)),
		),
		// Room
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomReadQueries)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Participant
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ParticipantReadQueries)),
		),
		fx.Annotate(
			readstore.NewParticipantReadStore,
			fx.As(new(queries.ParticipantReadStore)),
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

// Write repositories are bound per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewPinger(pool *pgxpool.Pool) handler.Pinger {
	return pool
}
