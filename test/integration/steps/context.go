//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/blobstore"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/validator"
	"github.com/finance-tracker/ledger/test/integration/mock"
)

type testContext struct {
	server   *httptest.Server
	client   *http.Client
	backend  string
	blobs    adapter.BlobStore
	timeMock *mock.Time
	headers  map[string]string
	response *response
	// saved maps scenario aliases to ids captured from responses.
	saved map[string]string
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		validator.Register()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.stopServer()
		return ctx, nil
	})

	// Background steps
	ctx.Step(`^the store backend is "([^"]*)"$`, test.theStoreBackendIs)
	ctx.Step(`^today is "([^"]*)"$`, test.todayIs)
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^the application restarts$`, test.theApplicationRestarts)

	// Fixture steps
	ctx.Step(`^an account "([^"]*)" exists with balance "([^"]*)"$`, test.anAccountExistsWithBalance)
	ctx.Step(`^a category "([^"]*)" of type "([^"]*)" exists$`, test.aCategoryOfTypeExists)
	ctx.Step(`^a monthly budget "([^"]*)" for "([^"]*)" with amount "([^"]*)" exists$`, test.aMonthlyBudgetExists)

	// Header steps
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Ledger assertion steps
	ctx.Step(`^account "([^"]*)" should have balance "([^"]*)"$`, test.accountShouldHaveBalance)
	ctx.Step(`^budget "([^"]*)" should have spent "([^"]*)"$`, test.budgetShouldHaveSpent)
	ctx.Step(`^the sqlite store should contain (\d+) blobs$`, test.theSQLiteStoreShouldContainBlobs)
}

func (t *testContext) before() {
	t.stopServer()
	t.backend = os.Getenv("TEST_STORE_BACKEND")
	if t.backend == "" {
		t.backend = config.StoreMemory
	}
	t.blobs = nil
	t.timeMock = mock.NewTime()
	t.headers = make(map[string]string)
	t.response = nil
	t.saved = make(map[string]string)
}

// openStore returns a clean blob store for the scenario's backend.
func (t *testContext) openStore() (adapter.BlobStore, error) {
	switch t.backend {
	case config.StoreMemory:
		return blobstore.NewMemoryStore(), nil
	case config.StoreRedis:
		client := mock.NewRedis()
		if err := mock.ClearRedis(client); err != nil {
			return nil, err
		}
		return blobstore.NewRedisStore(client), nil
	case config.StoreSQLite:
		db := mock.NewDb()
		if err := db.ClearDB(); err != nil {
			return nil, err
		}
		return blobstore.NewSQLStore(db.DbConn), nil
	default:
		return nil, fmt.Errorf("backend %q is not available in tests", t.backend)
	}
}

// startServer wires a fresh injector over the scenario's blob store and loads it.
func (t *testContext) startServer() error {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Store.Backend = t.backend
	cfg.Ledger.AutoCreateBudget = false

	injector := dependency.NewInjector(cfg, t.blobs, t.timeMock, adapters.NewIDGenerator())
	if err := injector.Store.Load(context.Background()); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	t.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	return nil
}

func (t *testContext) stopServer() {
	if t.server != nil {
		t.server.Close()
		t.server = nil
	}
}

func (t *testContext) theStoreBackendIs(backend string) error {
	if t.server != nil {
		return fmt.Errorf("the store backend must be chosen before the server starts")
	}
	t.backend = backend
	return nil
}

func (t *testContext) todayIs(date string) error {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server != nil {
		return nil
	}
	blobs, err := t.openStore()
	if err != nil {
		return err
	}
	t.blobs = blobs
	return t.startServer()
}

func (t *testContext) theApplicationRestarts() error {
	if t.blobs == nil {
		return fmt.Errorf("the server was never started")
	}
	t.stopServer()
	return t.startServer()
}
