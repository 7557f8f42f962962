package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/robinjoseph08/golib/signals"
	"github.com/shishobooks/archivist/pkg/config"
	"github.com/shishobooks/archivist/pkg/database"
	"github.com/shishobooks/archivist/pkg/fetch"
	"github.com/shishobooks/archivist/pkg/migrations"
	"github.com/shishobooks/archivist/pkg/pagecache"
	"github.com/shishobooks/archivist/pkg/server"
	"github.com/shishobooks/archivist/pkg/version"
	"github.com/uptrace/bun"
)

func main() {
	ctx := context.Background()
	log := logger.New()

	log.Info("starting archivist", logger.Data{"version": version.Version})

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	var db *bun.DB
	var cache fetch.Cache
	if cfg.CacheEnabled() {
		db, err = database.New(cfg)
		if err != nil {
			log.Err(err).Fatal("database error")
		}

		group, err := migrations.BringUpToDate(ctx, db)
		if err != nil {
			log.Err(err).Fatal("migrations error")
		}
		if group.ID == 0 {
			log.Info("no new migrations to run")
		} else {
			log.Info("migrated to new group", logger.Data{"group_id": group.ID, "migration_names": group.Migrations.String()})
		}

		pc := pagecache.New(db, cfg.CacheTTL)
		if n, err := pc.Purge(ctx); err != nil {
			log.Err(err).Warn("page cache purge error")
		} else if n > 0 {
			log.Info("purged expired pages", logger.Data{"count": n})
		}
		cache = pc
		log.Info("page cache enabled", logger.Data{"path": cfg.DatabaseFilePath, "ttl": cfg.CacheTTL.String()})
	}

	client := fetch.New(cfg, cache)

	srv, err := server.New(cfg, client)
	if err != nil {
		log.Err(err).Fatal("server error")
	}

	graceful := signals.Setup()

	go func() {
		lc := net.ListenConfig{}
		listener, err := lc.Listen(ctx, "tcp", srv.Addr)
		if err != nil {
			log.Err(err).Fatal("failed to bind port")
		}
		log.Info("server started", logger.Data{"addr": listener.Addr().String()})

		err = srv.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Err(err).Fatal("server stopped")
		}
		log.Info("server stopped")
	}()

	<-graceful
	log.Info("starting graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Error("server shutdown error")
	}
	log.Info("server shutdown")

	if db != nil {
		err = db.Close()
		if err != nil {
			log.Err(err).Error("database close error")
		}
		log.Info("database closed")
	}
}
