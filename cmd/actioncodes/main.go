package main

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	actioncodes "github.com/actioncodesorg/actioncodes"
	"github.com/actioncodesorg/actioncodes/adapters/events"
	"github.com/actioncodesorg/actioncodes/adapters/revocation"
	"github.com/actioncodesorg/actioncodes/adapters/verifier"
	"github.com/actioncodesorg/actioncodes/conf"
	transport "github.com/actioncodesorg/actioncodes/transport/http"
)

func main() {
	log := logrus.New()

	cfg, err := conf.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("invalid log level %q: %v", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to parse redis URL: %v", err)
	}
	redisClient := redis.NewClient(opts)

	publisher, err := redisstream.NewPublisher(
		redisstream.PublisherConfig{Client: redisClient},
		watermill.NewStdLogger(false, false),
	)
	if err != nil {
		log.Fatalf("failed to create publisher: %v", err)
	}

	protocol, err := actioncodes.New(actioncodes.Options{
		Verifier:    verifier.NewMulti(),
		Revocations: revocation.NewRedis(redisClient),
		Events:      events.NewWatermillPublisher(publisher),
		Logger:      log,
		CodeSecret:  cfg.CodeSecret,
	})
	if err != nil {
		log.Fatalf("failed to create protocol: %v", err)
	}

	router := transport.SetupRouter(transport.NewHandlers(protocol), log)

	log.WithField("addr", cfg.ListenAddr).Info("starting")
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
