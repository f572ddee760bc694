package bootstrap

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/RevanthDadi9/analyzer/internal/relay"
	"github.com/RevanthDadi9/analyzer/internal/shared/config"
	"github.com/RevanthDadi9/analyzer/internal/shared/server"
	"github.com/RevanthDadi9/analyzer/internal/shared/storage/object"
	localstore "github.com/RevanthDadi9/analyzer/internal/shared/storage/object/local"
	s3store "github.com/RevanthDadi9/analyzer/internal/shared/storage/object/s3"
	"github.com/RevanthDadi9/analyzer/internal/uploads"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	Store          object.ObjectStore
	RelayClient    relay.Client
	UploadsService *uploads.Service
	UploadsHandler *uploads.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	relayClient, err := relay.NewHTTPClient(cfg.AnalyzerBaseURL, cfg.AnalyzerTimeout)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:      cfg,
		Store:       store,
		RelayClient: relayClient,
	}

	app.UploadsService = &uploads.Service{Store: store, Relay: relayClient}
	app.UploadsHandler = uploads.NewHandler(app.UploadsService, cfg.MaxUploadBytes)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		UploadsHandler: app.UploadsHandler,
	})

	return app, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}
