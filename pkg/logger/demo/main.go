package main

import (
	"log/slog"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/logger"
)

func main() {
	log := logger.NewDefaultLogger(slog.LevelDebug)

	log.Info("============================================")
	log.Info("    Knowledge Graph Agent Logger Demo")
	log.Info("============================================")

	log.Debug("Debug message - gray")
	log.Info("Info message - standard color")
	log.Info("Persisting triples to store - green!")
	log.Warn("Warning message - yellow!")
	log.Error("Error message - red!")

	log.Info("Storage operations are highlighted in green:")
	log.Info("Persisting triples", "group_id", "default", "count", 42)
	log.Info("Triples stored", "duration", "12ms")
	log.Info("Graph loaded from store", "triples", 42)
	log.Info("Answering question", "question", "When did Apollo 11 launch?")
}
