package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"voiceforce/internal/platform/config"
	"voiceforce/internal/platform/logger"

	"voiceforce/internal/adapters/nlp"
	classifydom "voiceforce/internal/services/classify/domain"
	classifysvc "voiceforce/internal/services/classify/service"
)

// One-shot classification from the command line. Runs the pattern table and,
// when NLP_ENDPOINT is set, the remote fallback; prints the intent as JSON.
// No journal, no schema whitelist.
func main() {
	_ = godotenv.Load()

	var (
		text    = flag.String("text", "", "transcript to classify")
		timeout = flag.Duration("timeout", 20*time.Second, "overall deadline")
	)
	flag.Parse()

	l := logger.Get()
	if *text == "" {
		l.Fatal().Msg("-text is required")
	}

	root := config.New()
	nlpCfg := root.Prefix("NLP_")

	var fallback classifydom.FallbackPort
	if endpoint := nlpCfg.MayString("ENDPOINT", ""); endpoint != "" {
		fallback = nlp.New(nlp.Options{
			Endpoint: endpoint,
			APIKey:   nlpCfg.MayString("API_KEY", ""),
		})
	}

	svc := classifysvc.New(nil, nil, fallback, nil)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := svc.Classify(ctx, classifydom.Input{Text: *text})
	if err != nil {
		l.Fatal().Err(err).Msg("classification failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		l.Fatal().Err(err).Msg("encode failed")
	}
}
