package components

import (
	"estate-booking/internal/pkg/clock"
	"estate-booking/internal/usecase"
	"estate-booking/internal/usecase/commands"
	"estate-booking/internal/usecase/queries"

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
	commands.NewFanoutDispatcher,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewProjectUseCase,
		commands.NewPlotUseCase,
		commands.NewUserUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProjectQueries,
		queries.NewBookingQueries,
		queries.NewTaskQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
