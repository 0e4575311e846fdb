package huffmantesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	rng *rand.Rand
}

type TestConfig struct {
	// We seed the RNG so that generated corpora are the same from run to run.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // can be "" defaults to INFO
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "INFO"
	}
	logger.New(level)

	return TestContext{
		T:   t,
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

func (c *TestContext) Rand() *rand.Rand { return c.rng }
