//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	adapterrepo "github.com/reviseapp/revise/internal/adapter/repository"
	"github.com/reviseapp/revise/internal/adapter/rest"
	"github.com/reviseapp/revise/internal/infrastructure/config"
	"github.com/reviseapp/revise/internal/infrastructure/database"
	"github.com/reviseapp/revise/internal/infrastructure/server"
	"github.com/reviseapp/revise/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
)

var databaseSet = wire.NewSet(
	database.NewEntClient,
	database.NewConnection,
)

var repositorySet = wire.NewSet(
	adapterrepo.NewSubjectRepository,
	adapterrepo.NewTopicRepository,
	adapterrepo.NewSubtopicRepository,
	adapterrepo.NewCurriculumRepository,
	adapterrepo.NewConfidenceRepository,
	adapterrepo.NewTaskRepository,
	adapterrepo.NewTaskTypeRepository,
	adapterrepo.NewUserRepository,
	adapterrepo.NewStatsRepository,
)

var usecaseSet = wire.NewSet(
	provideRand,
	provideConfidenceUsecase,
	provideSubtopicPacker,
	provideTaskGenerator,
	usecase.NewSubjectDistributor,
	usecase.NewTopicSelector,
	usecase.NewPlannerUsecase,
	usecase.NewUserUsecase,
	usecase.NewCurriculumUsecase,
	usecase.NewAnalyticsUsecase,
)

var restSet = wire.NewSet(
	provideTokenManager,
	rest.NewAuthHandler,
	rest.NewPlannerHandler,
	rest.NewConfidenceHandler,
	rest.NewCurriculumHandler,
	rest.NewSettingsHandler,
	rest.NewAnalyticsHandler,
	wire.Struct(new(rest.RouterConfig), "*"),
	rest.NewRouter,
)

var serverSet = wire.NewSet(
	server.NewLogger,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		restSet,
		serverSet,
		wire.Struct(new(Container), "Logger", "Server"),
	)
	return nil, nil, nil
}
