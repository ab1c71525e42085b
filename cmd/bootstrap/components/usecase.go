package components

import (
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/jwt"
	"room-reservation/internal/usecase"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
	func(v *jwt.IdentityVerifier) commands.IdentityVerifier { return v },
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLocationCommands,
		commands.NewRoomCommands,
		commands.NewReservationCommands,
		commands.NewParticipantCommands,
		commands.NewUserCommands,
		commands.NewAuthCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLocationQueries,
		queries.NewRoomQueries,
		queries.NewReservationQueries,
		queries.NewParticipantQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
