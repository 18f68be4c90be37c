package di

import (
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wp2ghost/wp2ghost/internal/config"
	"github.com/wp2ghost/wp2ghost/internal/logger"
	"github.com/wp2ghost/wp2ghost/internal/markdown"
)

func TestContainer_Bootstrap(t *testing.T) {
	cfg := &config.Config{
		App:    config.AppConfig{Environment: "production"},
		Logger: config.LoggerConfig{Level: "error"},
		Convert: config.ConvertConfig{
			Input:         "/in.xml",
			Output:        "/out.json",
			RedirectsFile: "/redirects.json",
			IncludeUsers:  true,
		},
	}

	injector := NewContainer(cfg)
	svc, log := Bootstrap(injector)
	require.NotNil(t, svc)
	require.NotNil(t, log)

	assert.Same(t, cfg, do.MustInvoke[*config.Config](injector))
	assert.Same(t, log, do.MustInvoke[*logger.Logger](injector))
	assert.NotNil(t, do.MustInvoke[*markdown.Converter](injector))
}
