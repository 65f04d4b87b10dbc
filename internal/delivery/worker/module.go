// Package worker serves the notifier process: Pub/Sub push delivery and the Kafka consumer.
package worker

import (
	"lostfound/internal/delivery/worker/handler"

	"go.uber.org/fx"
)

// Module provides the worker deliveries into the "deliveries" group
var Module = fx.Module("worker",
	fx.Provide(
		handler.NewJobProcessor,
		handler.NewPushHandler,
		fx.Annotate(NewServer, fx.ResultTags(`group:"deliveries"`)),
		fx.Annotate(NewKafkaConsumer, fx.ResultTags(`group:"deliveries"`)),
	),
)
