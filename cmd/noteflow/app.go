package main

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/noteflow/internal/chat"
	"github.com/at-ishikawa/noteflow/internal/classification"
	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/classifier/openai"
	"github.com/at-ishikawa/noteflow/internal/config"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/converter"
	"github.com/at-ishikawa/noteflow/internal/database"
	"github.com/at-ishikawa/noteflow/internal/inspiration"
	"github.com/at-ishikawa/noteflow/internal/organize"
)

// app is the set of services one command invocation works with.
type app struct {
	cfg   *config.Config
	db    *sqlx.DB
	store *content.Store

	gateway     *openai.Client
	gate        *inspiration.Gate
	categorizer *inspiration.Categorizer
	converter   *converter.Converter
	router      *classification.Router
	organizer   *organize.Organizer
	chat        *chat.Service
}

// newApp opens the store and the approval gate. With withGateway the classifier
// flows are wired too, which requires OPENAI_API_KEY.
func newApp(withGateway bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, db: db, store: content.NewDBStore(db)}
	a.gate = inspiration.NewGate(a.store.Categories, a.store.Notes)
	if !withGateway {
		return a, nil
	}

	if cfg.OpenAI.APIKey == "" {
		_ = db.Close()
		return nil, errors.New("OPENAI_API_KEY environment variable is required")
	}
	a.gateway = openai.NewClient(cfg.OpenAI, cfg.Organize.MaxTokensPerBatch)
	var gateway classifier.Gateway = a.gateway

	a.categorizer = inspiration.NewCategorizer(gateway, a.store.Categories, a.store.Notes, a.gate)
	a.converter = converter.NewConverter(gateway, a.store.Notes, a.store.Planner)
	a.router = classification.NewRouter(gateway, a.categorizer, a.converter, nil)
	a.organizer = organize.NewOrganizer(gateway, a.store.Notes, a.store.Folders, nil)
	a.chat = chat.NewService(gateway, a.store.Chat, a.store.Folders, cfg.Chat.HistoryLimit, nil)
	return a, nil
}

func (a *app) migrate() (uint, error) {
	return database.Migrate(a.db, a.cfg.Database.Driver)
}

func (a *app) Close() {
	if a.gateway != nil {
		_ = a.gateway.Close()
	}
	_ = a.db.Close()
}
