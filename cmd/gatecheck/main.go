package main

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/layer-3/gatecheck/adapters/clearance"
	"github.com/layer-3/gatecheck/adapters/events"
	"github.com/layer-3/gatecheck/adapters/store"
	"github.com/layer-3/gatecheck/adapters/verifier"
	"github.com/layer-3/gatecheck/config"
	"github.com/layer-3/gatecheck/ports"
	"github.com/layer-3/gatecheck/service"
	"github.com/layer-3/gatecheck/transport/http"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := watermill.NewStdLogger(false, false)

	// Verification results and events go through Redis when configured,
	// so replicas share settled results. Otherwise everything stays
	// in-process.
	var resultStore ports.ResultStore
	var publisher message.Publisher

	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}

		redisClient := redis.NewClient(opts)
		resultStore = store.NewRedisStore(redisClient)

		publisher, err = redisstream.NewPublisher(
			redisstream.PublisherConfig{
				Client: redisClient,
			},
			logger,
		)
		if err != nil {
			log.Fatalf("Failed to create Redis publisher: %v", err)
		}
	} else {
		resultStore = store.NewMemoryStore()
		publisher = gochannel.NewGoChannel(gochannel.Config{}, logger)
	}

	captchaVerifier, err := verifier.NewHTTPVerifier(cfg.Captcha.Secret, cfg.Captcha.VerifyURL)
	if err != nil {
		log.Fatalf("Failed to create verifier: %v", err)
	}

	var issuer ports.ClearanceIssuer
	if cfg.Clearance.KeyPEM != "" {
		signKey, err := clearance.ParseSigningKey(cfg.Clearance.KeyPEM)
		if err != nil {
			log.Fatalf("Failed to parse clearance key: %v", err)
		}
		issuer = clearance.NewJWTIssuer(signKey, cfg.Clearance.TTL)
	}

	eventPub := events.NewWatermillPublisher(publisher)

	checker := service.NewChecker(captchaVerifier, resultStore, eventPub, logger, cfg.Captcha.ResultTTL)

	// Setup Gin router
	router := http.SetupRouter(checker, issuer)

	// Start server
	if err := router.Run(cfg.Server.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
