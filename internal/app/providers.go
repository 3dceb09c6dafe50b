package app

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/reviseapp/revise/internal/adapter/rest"
	"github.com/reviseapp/revise/internal/infrastructure/config"
	"github.com/reviseapp/revise/internal/repository"
	"github.com/reviseapp/revise/internal/usecase"
	"github.com/reviseapp/revise/pkg/roulette"
)

// provideRand seeds the shared randomness source used by the weighted draws.
func provideRand() roulette.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// provideConfidenceUsecase threads the configured staleness window through.
func provideConfidenceUsecase(
	cfg *config.Config,
	conf repository.ConfidenceRepository,
	topics repository.TopicRepository,
	subtopics repository.SubtopicRepository,
) usecase.ConfidenceUsecase {
	return usecase.NewConfidenceUsecase(conf, topics, subtopics, cfg.Staleness())
}

func provideSubtopicPacker(
	cfg *config.Config,
	subtopics repository.SubtopicRepository,
	conf repository.ConfidenceRepository,
	logger logrus.FieldLogger,
) usecase.SubtopicPacker {
	return usecase.NewSubtopicPacker(subtopics, conf, cfg.Staleness(), logger)
}

func provideTaskGenerator(
	cfg *config.Config,
	subjects repository.SubjectRepository,
	taskTypes repository.TaskTypeRepository,
	tasks repository.TaskRepository,
	distributor usecase.SubjectDistributor,
	selector usecase.TopicSelector,
	packer usecase.SubtopicPacker,
	rng roulette.Rand,
	logger logrus.FieldLogger,
) usecase.TaskGenerator {
	return usecase.NewTaskGenerator(
		subjects, taskTypes, tasks,
		distributor, selector, packer,
		cfg.Study.PackingFraction, rng, logger,
	)
}

func provideTokenManager(cfg *config.Config) *rest.TokenManager {
	return rest.NewTokenManager(cfg.Auth.JWTSecret, cfg.TokenTTL())
}
