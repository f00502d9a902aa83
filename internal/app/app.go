package app

import (
	"fmt"
	"net/http"

	"github.com/ligadavila/copa-engine/internal/config"
	"github.com/ligadavila/copa-engine/internal/domain/group"
	"github.com/ligadavila/copa-engine/internal/domain/match"
	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
	"github.com/ligadavila/copa-engine/internal/domain/person"
	"github.com/ligadavila/copa-engine/internal/domain/registration"
	"github.com/ligadavila/copa-engine/internal/domain/team"
	"github.com/ligadavila/copa-engine/internal/domain/tournament"
	"github.com/ligadavila/copa-engine/internal/infrastructure/repository/memory"
	"github.com/ligadavila/copa-engine/internal/infrastructure/repository/postgres"
	"github.com/ligadavila/copa-engine/internal/interfaces/httpapi"
	"github.com/ligadavila/copa-engine/internal/platform/cache"
	idgen "github.com/ligadavila/copa-engine/internal/platform/id"
	"github.com/ligadavila/copa-engine/internal/platform/logging"
	"github.com/ligadavila/copa-engine/internal/usecase"
)

type repositories struct {
	tournaments tournament.Repository
	teams       team.Repository
	people      person.Repository
	regs        registration.Repository
	groups      group.Repository
	matches     match.Repository
	venues      match.VenueRepository
	events      matchevent.Repository
}

// NewHTTPServer builds the full service. The returned cleanup closes
// storage handles and must run after the server shuts down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	standingsSvc := usecase.NewStandingsService(
		repos.groups, repos.matches, repos.events, repos.regs, repos.teams,
		store, cfg.StandingsWorkers,
	)
	careerSvc := usecase.NewCareerService(
		repos.regs, repos.matches, repos.events, repos.groups, repos.teams, repos.people,
		cfg.CareerWorkers,
	)
	matchResultSvc := usecase.NewMatchResultService(
		repos.matches, repos.venues, repos.events, repos.regs, repos.people,
	)
	lifecycleSvc := usecase.NewLifecycleService(
		repos.matches, repos.events, repos.regs,
		idgen.NewRandomGenerator(), logger,
	).WithInvalidator(standingsSvc)
	tournamentSvc := usecase.NewTournamentService(repos.tournaments, repos.groups)

	handler := httpapi.NewHandler(
		tournamentSvc, matchResultSvc, standingsSvc, careerSvc, lifecycleSvc, logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	switch cfg.StorageMode {
	case config.StoragePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("open database: %w", err)
		}
		logger.Info("storage ready", "mode", cfg.StorageMode, "db", dbNameFromURL(cfg.DBURL))
		return repositories{
			tournaments: postgres.NewTournamentRepository(db),
			teams:       postgres.NewTeamRepository(db),
			people:      postgres.NewPersonRepository(db),
			regs:        postgres.NewRegistrationRepository(db),
			groups:      postgres.NewGroupRepository(db),
			matches:     postgres.NewMatchRepository(db),
			venues:      postgres.NewVenueRepository(db),
			events:      postgres.NewMatchEventRepository(db),
		}, db.Close, nil
	default:
		logger.Info("storage ready", "mode", cfg.StorageMode)
		return repositories{
			tournaments: memory.NewTournamentRepository(memory.SeedTournaments()),
			teams:       memory.NewTeamRepository(memory.SeedTeams()),
			people:      memory.NewPersonRepository(memory.SeedPeople()),
			regs:        memory.NewRegistrationRepository(memory.SeedTeamRegistrations(), memory.SeedPlayerRegistrations()),
			groups:      memory.NewGroupRepository(memory.SeedGroups()),
			matches:     memory.NewMatchRepository(memory.SeedMatches()),
			venues:      memory.NewVenueRepository(memory.SeedVenues()),
			events:      memory.NewMatchEventRepository(memory.SeedMatchEvents()),
		}, func() error { return nil }, nil
	}
}
