package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"desktop-assistant/config"
	"desktop-assistant/internal/assistant"
	"desktop-assistant/internal/automation"
	"desktop-assistant/internal/automation/launcher"
	"desktop-assistant/internal/chat"
	"desktop-assistant/internal/classifier"
	"desktop-assistant/internal/imagegen"
	"desktop-assistant/internal/presenter"
	"desktop-assistant/internal/router"
	"desktop-assistant/internal/search"
	"desktop-assistant/internal/session"
	"desktop-assistant/internal/session/repository"
	"desktop-assistant/internal/session/repository/memory"
	"desktop-assistant/internal/session/repository/sqlite"
	sessionUC "desktop-assistant/internal/session/usecase"
	"desktop-assistant/pkg/datemath"
	"desktop-assistant/pkg/httpproxy"
	"desktop-assistant/pkg/huggingface"
	"desktop-assistant/pkg/llmprovider"
	"desktop-assistant/pkg/log"
	"desktop-assistant/pkg/websearch"
	"desktop-assistant/pkg/youtube"
)

// app is the fully wired assistant.
type app struct {
	assistant *assistant.Assistant
	session   session.UseCase
	images    *imagegen.Worker
	repo      repository.Repository
}

func newLogger(cfg *config.Config) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
}

func newRepository(cfg *config.Config) (repository.Repository, error) {
	switch cfg.Session.Driver {
	case "memory":
		return memory.New(), nil
	case "sqlite", "":
		return sqlite.New(cfg.Session.DSN)
	default:
		return nil, fmt.Errorf("unknown session driver %q", cfg.Session.Driver)
	}
}

func newManager(chain *config.ChainConfig, httpClient *http.Client, l log.Logger) (*llmprovider.Manager, error) {
	providers, err := llmprovider.InitializeProviders(chain, httpClient)
	if err != nil {
		return nil, err
	}
	mcfg, err := llmprovider.ManagerConfig(chain)
	if err != nil {
		return nil, err
	}
	return llmprovider.NewManager(providers, mcfg, l), nil
}

func newClassifier(cfg *config.Config, httpClient *http.Client, l log.Logger) (*classifier.LLMClassifier, error) {
	llm, err := newManager(&cfg.LLM.Classifier, httpClient, l)
	if err != nil {
		return nil, fmt.Errorf("classifier providers: %w", err)
	}
	return classifier.New(llm, l, classifier.Config{
		MaxRetries:  cfg.Classifier.MaxRetries,
		Temperature: cfg.Classifier.Temperature,
	}), nil
}

// buildApp wires every collaborator. out receives presented answers.
func buildApp(ctx context.Context, cfg *config.Config, l log.Logger, out io.Writer) (*app, error) {
	httpClient, err := httpproxy.NewClient(cfg.LLM.Proxy)
	if err != nil {
		return nil, fmt.Errorf("proxy: %w", err)
	}

	clock, err := datemath.NewClock(cfg.Assistant.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to local time: %v", cfg.Assistant.Timezone, err)
		clock, _ = datemath.NewClock("")
	}

	repo, err := newRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("session repository: %w", err)
	}
	sess := sessionUC.New(l, repo, session.Names{
		Username:      cfg.Assistant.Username,
		AssistantName: cfg.Assistant.AssistantName,
	})
	if cfg.Assistant.SeedGreeting {
		if err := sess.SeedGreeting(ctx); err != nil {
			l.Warnf(ctx, "Seed greeting: %v", err)
		}
	}

	cls, err := newClassifier(cfg, httpClient, l)
	if err != nil {
		repo.Close()
		return nil, err
	}
	chatLLM, err := newManager(&cfg.LLM.Chat, httpClient, l)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("chat providers: %w", err)
	}

	chatUC := chat.New(l, chatLLM, sess, clock, chat.Config{
		Username:      cfg.Assistant.Username,
		AssistantName: cfg.Assistant.AssistantName,
		HistorySize:   cfg.Assistant.HistorySize,
	})

	var searcher search.Searcher
	var webSearcher automation.WebSearcher
	if cfg.Search.APIKey != "" && cfg.Search.CX != "" {
		ws, err := websearch.New(ctx, websearch.Config{APIKey: cfg.Search.APIKey, CX: cfg.Search.CX, HTTPClient: httpClient})
		if err != nil {
			l.Warnf(ctx, "Web search not available: %v", err)
		} else {
			searcher, webSearcher = ws, ws
		}
	} else {
		l.Warn(ctx, "Web search disabled: search.api_key or search.cx is missing")
	}

	searchUC := search.New(l, chatLLM, searcher, sess, clock, search.Config{
		Username:      cfg.Assistant.Username,
		AssistantName: cfg.Assistant.AssistantName,
		HistorySize:   cfg.Assistant.HistorySize,
		Results:       cfg.Search.Results,
		CacheTTL:      cfg.Search.CacheTTL,
		CacheSize:     cfg.Search.CacheMax,
	})

	var videos automation.VideoFinder
	if cfg.YouTube.APIKey != "" {
		yt, err := youtube.New(ctx, youtube.Config{APIKey: cfg.YouTube.APIKey, HTTPClient: httpClient})
		if err != nil {
			l.Warnf(ctx, "YouTube lookup not available: %v", err)
		} else {
			videos = yt
		}
	}

	osLauncher := launcher.New(launcher.Config{Browser: cfg.Automation.Browser, Editor: cfg.Automation.Editor})
	automationUC := automation.New(l, automation.Deps{
		Launcher: osLauncher,
		Search:   webSearcher,
		Videos:   videos,
		Writer:   chatUC,
	}, automation.Config{
		Workers: cfg.Automation.Workers,
		DataDir: cfg.Assistant.DataDir,
	})

	var images *imagegen.Worker
	var imageRequester router.ImageRequester
	if cfg.ImageGen.Enabled && cfg.ImageGen.APIKey != "" {
		hf, err := huggingface.New(huggingface.Config{APIKey: cfg.ImageGen.APIKey, ModelURL: cfg.ImageGen.ModelURL})
		if err != nil {
			l.Warnf(ctx, "Image generation not available: %v", err)
		} else {
			images = imagegen.New(l, hf, osLauncher, imagegen.Config{
				Images:    cfg.ImageGen.Images,
				QueueSize: cfg.ImageGen.QueueSize,
				DataDir:   cfg.Assistant.DataDir,
			})
			imageRequester = images
		}
	}

	console := presenter.NewConsole(out, cfg.Assistant.AssistantName)
	var sink router.Presenter = console
	if cfg.Presenter.TTSEnabled {
		sink = presenter.Multi{console, presenter.NewSpeaker(l, cfg.Presenter.TTSCommand)}
	}

	rt := router.New(l, router.Deps{
		Chat:       chatUC,
		Realtime:   searchUC,
		Automation: automationUC,
		Images:     imageRequester,
		Session:    sess,
		Presenter:  sink,
	})

	a := assistant.New(l, assistant.Deps{
		Classifier: cls,
		Router:     rt,
		Session:    sess,
		Echo:       presenter.NewConsole(out, cfg.Assistant.Username),
	}, assistant.Config{
		HistorySize: cfg.Assistant.HistorySize,
		TurnTimeout: cfg.Assistant.TurnTimeout,
	})

	l.Infof(ctx, "Assistant %s ready (data dir %s)", cfg.Assistant.AssistantName, filepath.Clean(cfg.Assistant.DataDir))
	return &app{assistant: a, session: sess, images: images, repo: repo}, nil
}

func (a *app) Close() error {
	if a.images != nil {
		a.images.Close()
	}
	return a.repo.Close()
}
