//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"event-quote-sim/cmd/bootstrap"
	"event-quote-sim/cmd/bootstrap/components"
	"event-quote-sim/internal/pkg/clock"
	"event-quote-sim/internal/pkg/config"
	"event-quote-sim/internal/pkg/random"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

var e2eStart = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// ------------------------------------------------------------
// App construction for e2e tests.
// The real wiring is used, with a logical clock and a fixed random source so
// the simulated flow is deterministic.
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config, sched *clock.ManualScheduler, rnd random.Source) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.PipelineModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Decorate(
			func(clock.Scheduler) clock.Scheduler { return sched },
			func(random.Source) random.Source { return rnd },
		),
		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	if router == nil {
		panic("router was not populated")
	}

	return router, app
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router    *gin.Engine
	Config    config.Config
	Scheduler *clock.ManualScheduler

	app *fx.App
}

// StartApp builds a fresh app, stopping the previous one. Every test starts
// with an empty pipeline.
func (s *SharedSuite) StartApp(rnd random.Source) {
	s.stopApp()

	gin.SetMode(gin.TestMode)
	s.Config = config.NewTestConfig()
	s.Scheduler = clock.NewManualScheduler(e2eStart)
	s.Router, s.app = buildE2EApp(s.Config, s.Scheduler, rnd)
	require.NotNil(s.T(), s.Router, "router setup failed")
}

func (s *SharedSuite) stopApp() {
	if s.app == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.app.Stop(ctx); err != nil {
		slog.Warn("failed to stop fx app", "error", err.Error())
	}
	s.app = nil
}

// SetupTest uses a sample above the default failure probability, so requests
// succeed unless a test restarts the app with another source.
func (s *SharedSuite) SetupTest() {
	s.StartApp(random.Fixed(0.99))
}

func (s *SharedSuite) TearDownTest() {
	s.stopApp()
}

// Advance moves the logical clock and fires the pipeline steps that come due.
func (s *SharedSuite) Advance(d time.Duration) {
	s.Scheduler.Advance(d)
}

// TimeToReady is how long a request takes from submission to Ready.
func (s *SharedSuite) TimeToReady(words int) time.Duration {
	p := s.Config.Pipeline
	return time.Duration(words)*p.TypewriterInterval + p.ContactingDelay + p.GeneratingDelay
}
