package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"voiceforce/internal/platform/config"
	"voiceforce/internal/platform/logger"
	phttp "voiceforce/internal/platform/net/http"
	"voiceforce/internal/platform/store"

	"voiceforce/internal/adapters/nlp"
	"voiceforce/internal/adapters/salesforce"
	"voiceforce/internal/services/api"
)

func main() {
	// .env is a local-dev convenience; absence is fine
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (VF_API_*)
	root := config.New()
	apiCfg := root.Prefix("VF_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // classification journal
	sfCfg := root.Prefix("SF_")            // CRM org
	nlpCfg := root.Prefix("NLP_")          // remote classifier

	// bring up logging early
	l := logger.Get()

	// open the platform store; the journal is optional, the API runs without it
	pgURL := pgCfg.MayString("DBURL", "")
	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:     pgURL != "",
				URL:         pgURL,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// CRM transport (search, records, describe)
	sf := salesforce.New(salesforce.Options{
		InstanceURL: sfCfg.MustString("INSTANCE_URL"),
		AccessToken: sfCfg.MustString("ACCESS_TOKEN"),
		APIVersion:  sfCfg.MayString("API_VERSION", ""),
		Timeout:     sfCfg.MayDuration("TIMEOUT", 10*time.Second),
	})

	// remote classification fallback; without an endpoint the rule engine
	// runs alone
	var remote *nlp.Client
	if endpoint := nlpCfg.MayString("ENDPOINT", ""); endpoint != "" {
		remote = nlp.New(nlp.Options{
			Endpoint: endpoint,
			APIKey:   nlpCfg.MayString("API_KEY", ""),
			Timeout:  nlpCfg.MayDuration("TIMEOUT", 15*time.Second),
		})
	}

	// http server (reads VF_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			Salesforce:     sf,
			NLP:            remote,
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
