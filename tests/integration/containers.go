package integration

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	dbUser = "commentapp"
	dbPass = "commentapp"
	dbName = "commentappdb"
)

// InitPostgresContainer starts a disposable Postgres and points the DB_* settings at it.
type InitPostgresContainer struct {
	container testcontainers.Container
}

func (i *InitPostgresContainer) Initialize(ctx context.Context) (context.Context, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     dbUser,
				"POSTGRES_PASSWORD": dbPass,
				"POSTGRES_DB":       dbName,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return ctx, err
	}
	i.container = c

	host, err := c.Host(ctx)
	if err != nil {
		return ctx, err
	}
	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		return ctx, err
	}

	os.Setenv("DB_HOST", host)        //nolint:errcheck
	os.Setenv("DB_PORT", port.Port()) //nolint:errcheck
	return ctx, nil
}

func (i InitPostgresContainer) Close() {
	if i.container != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		if err := i.container.Terminate(cancelCtx); err != nil {
			log.Printf("failed to stop postgres container: %v", err)
		}
	}
}

type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		os.Setenv(key, value) //nolint:errcheck
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for key := range i.envVars {
		os.Unsetenv(key) //nolint:errcheck
	}
	os.Unsetenv("DB_HOST") //nolint:errcheck
	os.Unsetenv("DB_PORT") //nolint:errcheck
}
