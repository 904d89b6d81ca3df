package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"flagfootball-backend/internal/config"
	"flagfootball-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "league"
	pgPassword = "league-test"
	pgDatabase = "league_test"
)

// One Postgres container serves every suite in the test binary.
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// leagueTables is ordered children first for TRUNCATE.
var leagueTables = []string{
	"game_attendance",
	"player_game_stats",
	"team_join_requests",
	"players",
	"games",
	"teams",
	"users",
}

// BaseTestSuite gives repository suites a migrated database that is emptied around every test
type BaseTestSuite struct {
	suite.Suite
	DB       *gorm.DB
	Config   *config.Config
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// SetupTestSuite starts the shared container on first use and returns a suite bound to it.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		DB:       sharedDB,
		Config:   sharedConfig,
		pool:     sharedPool,
		resource: sharedResource,
	}
}

// CleanupSharedContainer closes the pool and purges the container. TestMain calls it once.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool == nil || sharedResource == nil {
		return
	}
	if err := sharedPool.Purge(sharedResource); err != nil {
		log.Printf("WARN: could not purge %s: %v", sharedResource.Container.Name, err)
	}
	sharedResource = nil
	sharedPool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite leaves the container running for the next suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties the league tables. schema_versions survives so VerifySchema keeps passing.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, t := range leagueTables {
		if m.HasTable(t) {
			s.DB.Exec(`TRUNCATE TABLE "` + t + `" RESTART IDENTITY CASCADE`)
		}
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		// Initialize migrates and stamps the schema version
		gdb, err := database.Initialize(dsn, nil)
		if err != nil {
			return err
		}
		sharedDB = gdb
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres container never became ready: %w", err)
	}

	sharedConfig = &config.Config{
		DatabaseURL:        dsn,
		Port:               "8080",
		LogLevel:           "debug",
		Environment:        "test",
		AutoMigrate:        true,
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		PublicBaseURL:      "http://localhost:3000",
		QRSize:             256,
	}

	log.Printf("Test Postgres listening on %s", port)
	return nil
}
