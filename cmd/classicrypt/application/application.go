package application

import (
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"github.com/sergeii/classicrypt/cmd/classicrypt/components/exporter"
	"github.com/sergeii/classicrypt/cmd/classicrypt/container"
	"github.com/sergeii/classicrypt/cmd/classicrypt/logging"
	"github.com/sergeii/classicrypt/internal/core/repositories"
	"github.com/sergeii/classicrypt/internal/metrics"
	"github.com/sergeii/classicrypt/internal/persistence"
	"github.com/sergeii/classicrypt/internal/validation"
)

type Repositories struct {
	fx.Out

	Keys repositories.KeyRepository
}

func provideRepositories(repos persistence.Repositories) Repositories {
	return Repositories{
		Keys: repos.Keys,
	}
}

type Builder struct {
	opts []fx.Option
}

func NewBuilder(opts ...fx.Option) *Builder {
	return &Builder{
		opts: opts,
	}
}

func (b *Builder) Add(opts ...fx.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) WithExporter() *Builder {
	return b.Add(
		fx.Invoke(func(*exporter.Component) {}),
	)
}

func (b *Builder) Build() *fx.App {
	return fx.New(b.opts...)
}

var Module = fx.Module("application",
	fx.Invoke(logging.NoGlobal),
	fx.Provide(clockwork.NewRealClock),
	fx.Provide(validation.New),
	fx.Provide(provideRepositories),
	fx.Provide(metrics.New),
	container.Module,
)
