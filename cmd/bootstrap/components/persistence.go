package components

import (
	"lunchbox/internal/infra/cache"
	"lunchbox/internal/infra/db"
	"lunchbox/internal/infra/readstore"
	"lunchbox/internal/infra/uow"
	"lunchbox/internal/pkg/config"
	"lunchbox/internal/usecase/queries"
	"lunchbox/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog, fronted by the redis read-through cache on query paths
		readstore.NewCatalogReadStore,
		NewCachedProductSource,
		// Lunch
		fx.Annotate(
			readstore.NewLunchReadStore,
			fx.As(new(queries.LunchReadStore)),
		),
		// Schedule
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCachedProductSource(base *readstore.CatalogReadStore, rdb *redis.Client, cfg config.Config) readstore.ProductSource {
	return cache.NewCachedCatalog(base, rdb, cfg.Redis.CacheTTL)
}
