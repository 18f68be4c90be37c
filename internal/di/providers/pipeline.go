package providers

import (
	"github.com/samber/do/v2"

	"github.com/wp2ghost/wp2ghost/internal/config"
	"github.com/wp2ghost/wp2ghost/internal/logger"
	"github.com/wp2ghost/wp2ghost/internal/markdown"
	"github.com/wp2ghost/wp2ghost/internal/migrate"
)

// ProvideConverter provides the content converter backed by html-to-markdown.
func ProvideConverter(i do.Injector) (*markdown.Converter, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return markdown.NewConverter(markdown.NewHTMLToMarkdown(), log), nil
}

// ProvideMigrateService provides the conversion service.
func ProvideMigrateService(i do.Injector) (*migrate.Service, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	conv := do.MustInvoke[*markdown.Converter](i)

	return migrate.NewService(conv, migrate.Options{
		GenerateMissingSlugs: cfg.Convert.GenerateMissingSlugs,
		IncludeUsers:         cfg.Convert.IncludeUsers,
	}, log), nil
}
