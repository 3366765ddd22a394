package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/justsurfingit/maya-pricing/internal/config"
	"github.com/justsurfingit/maya-pricing/internal/database"
	"github.com/justsurfingit/maya-pricing/internal/handlers"
	"github.com/justsurfingit/maya-pricing/internal/logging"
	"github.com/justsurfingit/maya-pricing/internal/metrics"
	"github.com/justsurfingit/maya-pricing/internal/services"
	"github.com/justsurfingit/maya-pricing/internal/wizard"
)

func main() {
	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}
	logging.Setup(cfg.LogLevel, !cfg.Production())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Database connection failed")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(reg)

	// 3. Language models. Either may be missing; the services fall back to
	// templates and fixed lists.
	var gemini, claude services.Completer
	if llm, err := services.NewLLMService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel); err == nil {
		gemini = llm
	} else {
		log.Warn().Err(err).Msg("Gemini disabled")
	}
	if c, err := services.NewClaudeService(cfg.AnthropicAPIKey, cfg.AnthropicModel); err == nil {
		claude = c
	} else {
		log.Warn().Err(err).Msg("Claude disabled")
	}

	// 4. Core services
	descriptions := services.NewDescriptionService(firstOf(gemini, claude), recorder)
	autocomplete := services.NewAutocompleteService(firstOf(claude, gemini), recorder)
	pricing := services.NewPricingService(db)
	candidates := services.NewCandidateService(db, cfg.CandidateCacheTTL, cfg.RecommendationLimit, recorder)
	usernames := services.NewUsernameService(db)
	users := services.NewUserService(db)
	recruiters := services.NewRecruiterService(db)

	store := wizard.NewStore(wizard.Deps{
		Descriptions: descriptions,
		Candidates:   candidates,
		Pricing:      pricing,
		Observer:     recorder,
	}, cfg.WizardSessionTTL)
	go store.Run(ctx, time.Minute)

	api := &handlers.API{
		Pricing:      handlers.NewPricingHandler(pricing, descriptions),
		Candidates:   handlers.NewCandidateHandler(candidates),
		Autocomplete: handlers.NewAutocompleteHandler(autocomplete),
		Users:        handlers.NewUserHandler(usernames, users),
		Recruiters:   handlers.NewRecruiterHandler(recruiters),
		Wizard:       handlers.NewWizardHandler(store, recorder),
	}

	// 5. Router and CORS
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = cfg.CORSAllowAll
	if !cfg.CORSAllowAll {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", handlers.UserIDHeader}
	r.Use(cors.New(corsConfig))

	api.Register(r.Group("/api/v1"))
	r.GET("/metrics", gin.WrapH(recorder.Handler()))

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
	log.Info().Msg("Server stopped")
}

func firstOf(cs ...services.Completer) services.Completer {
	for _, c := range cs {
		if c != nil {
			return c
		}
	}
	return nil
}
