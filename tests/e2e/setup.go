//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"hydro-command/cmd/bootstrap"
	"hydro-command/cmd/bootstrap/components"
	"hydro-command/internal/infra/db"
	"hydro-command/internal/pkg/config"
	"hydro-command/internal/pkg/metrics"
	"hydro-command/tests/common/authtest"
	"hydro-command/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "hydro"
	pgPassword = "hydro-e2e"
	pgPort     = nat.Port("5432/tcp")
)

// One postgres container per test binary; every suite gets its own database.
var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error
)

func postgresContainer(t *testing.T) testcontainers.Container {
	t.Helper()
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			Started: true,
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "max_connections=200"},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port)
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "hydro-command-e2e"},
			},
		})
	})
	require.NoError(t, pgErr, "postgres container")
	return pgContainer
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

// newDatabase creates an empty database on the shared container, applies
// every migration in order and drops the database when t finishes.
func newDatabase(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := postgresContainer(t)
	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, pgPort)
	require.NoError(t, err)

	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err)
	defer admin.Close()

	name := "hydro_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err, "create database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			slog.Warn("drop database: connect failed", "database", name, "error", err)
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err)
		}
	})

	cfg := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
	pool, closeDB, err := db.Connect(ctx, cfg)
	require.NoError(t, err, "connect test database")
	t.Cleanup(closeDB)

	for _, file := range migrationFiles(t) {
		sql, err := os.ReadFile(file)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, string(sql))
		require.NoError(t, err, "apply %s", filepath.Base(file))
	}
	return pool, cfg
}

// migrationFiles finds migrations/ next to go.mod, whatever package
// directory the test binary runs in.
func migrationFiles(t *testing.T) []string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod not found above test directory")
		dir = parent
	}
	files, err := filepath.Glob(filepath.Join(dir, "migrations", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no migrations")
	sort.Strings(files)
	return files
}

// newApp boots the real fx graph against the test database. Redis, NATS and
// MQTT stay disabled, so the in-memory cooldown table and rate limiters are
// used and notifications only reach the websocket hub.
func newApp(t *testing.T, pool *pgxpool.Pool, dbCfg config.DBConfig) (*gin.Engine, config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg

	var router *gin.Engine
	app := fx.New(
		fx.Invoke(metrics.Init),
		fx.Supply(cfg),
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		bootstrap.JWTModule,
		bootstrap.MessagingModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app", "error", err)
		}
	})
	require.NotNil(t, router)
	return router, cfg
}

// SharedSuite is embedded by every e2e suite.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	JWT    *authtest.JWTHelper
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	pool, dbCfg := newDatabase(t)
	s.DB = pool
	s.Router, s.Config = newApp(t, pool, dbCfg)
	s.JWT = authtest.NewJWTHelper(s.Config.JWT)
}

// SetupSubTest gives every t.Run an empty schema.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}
