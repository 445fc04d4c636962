// Package handler runs one status-change invocation: properties, secret
// store, database, then the status INSERT.
package handler

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spatialid/adjuststatus/internal/config"
	"github.com/spatialid/adjuststatus/internal/database"
	"github.com/spatialid/adjuststatus/internal/diag"
	"github.com/spatialid/adjuststatus/internal/logging"
	"github.com/spatialid/adjuststatus/internal/model"
	"github.com/spatialid/adjuststatus/internal/secrets"
	"github.com/spatialid/adjuststatus/internal/store"
)

// Options configure a Handler.
type Options struct {
	ConfigPath string
	Migrate    bool
}

// Handler is reused across invocations of a warm process; the secret cache
// it holds lives as long as the process.
type Handler struct {
	opts    Options
	secrets *secrets.Cache
	logger  *slog.Logger
	openDB  func(ctx context.Context, driver string, creds database.Credentials) (*sql.DB, error)
	newID   func() string
}

func New(opts Options, cache *secrets.Cache, logger *slog.Logger) *Handler {
	return &Handler{
		opts:    opts,
		secrets: cache,
		logger:  logger,
		openDB:  database.Open,
		newID:   uuid.NewString,
	}
}

// HandleRequest records ev in the status table. Any failure is logged where
// it is detected and returned unchanged.
func (h *Handler) HandleRequest(ctx context.Context, ev model.StatusEvent) error {
	msgs := logging.NewMessages(h.logger.With("invocation_id", h.newID()))
	msgs.Emit(ctx, logging.MsgInvocationStarted, ev.ZipFileName, ev.InfraCompanyID, ev.AdjustStatus)

	if err := ev.Validate(); err != nil {
		err = errors.WithStack(err)
		msgs.Emit(ctx, logging.MsgInvalidEvent, diag.Render(err))
		return err
	}

	cfg, err := config.Load(h.opts.ConfigPath)
	if err != nil {
		msgs.Emit(ctx, logging.MsgPropertiesFailed, diag.Render(err))
		return err
	}
	msgs.Emit(ctx, logging.MsgPropertiesLoaded, cfg.SecretName, cfg.SecretRegion)

	creds, err := h.credentials(ctx, cfg)
	if err != nil {
		msgs.Emit(ctx, logging.MsgSecretFailed, diag.Render(err))
		return err
	}
	msgs.Emit(ctx, logging.MsgSecretLoaded, cfg.SecretName)

	db, err := h.openDB(ctx, cfg.DBDriver, creds)
	if err != nil {
		err = errors.WithStack(err)
		msgs.Emit(ctx, logging.MsgConnectFailed, diag.Render(err))
		return err
	}
	defer db.Close()

	if h.opts.Migrate {
		if err := database.Migrate(db, cfg.DBDriver); err != nil {
			err = errors.WithStack(err)
			msgs.Emit(ctx, logging.MsgConnectFailed, diag.Render(err))
			return err
		}
	}

	rec := ev.Record()
	if !rec.AdjustStatus.Known() {
		msgs.Emit(ctx, logging.MsgUnknownStatus, string(rec.AdjustStatus))
	}

	if err := store.NewAdjustmentStore(db, cfg.DBDriver, msgs).Insert(ctx, rec); err != nil {
		return err
	}

	msgs.Emit(ctx, logging.MsgInvocationFinished, ev.ZipFileName)
	return nil
}

func (h *Handler) credentials(ctx context.Context, cfg *config.Config) (database.Credentials, error) {
	bundle, err := h.secrets.Load(ctx, cfg.SecretName, cfg.SecretRegion)
	if err != nil {
		return database.Credentials{}, err
	}

	var host, port, dbName, user, password string
	for _, kv := range []struct {
		key string
		dst *string
	}{
		{secrets.KeyHost, &host},
		{secrets.KeyPort, &port},
		{secrets.KeyDBName, &dbName},
		{secrets.KeyUser, &user},
		{secrets.KeyPassword, &password},
	} {
		v, err := bundle.Value(kv.key)
		if err != nil {
			return database.Credentials{}, err
		}
		*kv.dst = v
	}

	return database.Credentials{
		URI:      database.BuildConnectionURI(cfg.URITemplate, host, port, dbName),
		User:     user,
		Password: password,
	}, nil
}
