// Package main runs the scripted creature skirmish from the command line.
// It wires together configuration, logging, content loading, and the world.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/factory"
	"github.com/cory-johannsen/skirmish/internal/game/inventory"
	"github.com/cory-johannsen/skirmish/internal/game/world"
	"github.com/cory-johannsen/skirmish/internal/observability"
	"github.com/cory-johannsen/skirmish/internal/observer"
	"github.com/cory-johannsen/skirmish/internal/scripting"
	"github.com/cory-johannsen/skirmish/internal/simulation"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (defaults and SKIRMISH_* env when empty)")
	color := flag.Bool("color", true, "highlight deaths with ANSI color")
	flag.Parse()

	// Load configuration
	var (
		cfg config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Initialize loggers
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	combatLog, err := observability.NewCombatLogger(cfg.CombatLog)
	if err != nil {
		logger.Fatal("initializing combat log", zap.Error(err))
	}
	defer combatLog.Sync()

	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))
	combatLog = combatLog.With(zap.String("run_id", runID))

	logger.Info("starting skirmish",
		zap.String("world", cfg.World.Name),
		zap.String("difficulty", cfg.World.Difficulty),
	)

	// Load content
	registry, err := inventory.LoadRegistry(cfg.Content.WeaponsDir, cfg.Content.ArmorDir)
	if err != nil {
		logger.Fatal("loading item content", zap.Error(err))
	}
	logger.Info("item content loaded",
		zap.Int("weapons", len(registry.AllWeapons())),
		zap.Int("armors", len(registry.AllArmors())),
	)

	scripts := scripting.NewManager(logger, cfg.Content.ScriptInstructionLimit)
	defer scripts.Close()
	if cfg.Content.ScriptsDir != "" {
		if err := scripts.LoadDir(cfg.Content.ScriptsDir); err != nil {
			logger.Fatal("loading modifier scripts", zap.Error(err))
		}
	}

	creatures := factory.NewCreatureFactory(logger).WithRegistry(registry)
	if cfg.Content.ArchetypesDir != "" {
		defs, err := creature.LoadArchetypeDefs(cfg.Content.ArchetypesDir)
		if err != nil {
			logger.Fatal("loading archetypes", zap.Error(err))
		}
		if err := creatures.RegisterArchetypes(defs, scripts.Resolve); err != nil {
			logger.Fatal("registering archetypes", zap.Error(err))
		}
		logger.Info("archetypes loaded", zap.Int("count", len(defs)))
	}

	// Build the world and run
	w := world.New(cfg.World.MaxX, cfg.World.MaxY, cfg.World.Name, logger)
	runner := simulation.NewRunner(os.Stdout, w, creatures, logger,
		observer.NewConsoleObserver(os.Stdout, *color),
		observer.NewCombatLogger(combatLog),
	)
	runner.Run()

	logger.Info("skirmish complete", zap.Duration("elapsed", time.Since(start)))
}
