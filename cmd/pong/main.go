package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/platform"
)

// debugLogging enables file logging; set with -ldflags "-X main.debugLogging=true"
var debugLogging = "false"

func main() {
	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			platform.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPONG CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if logFile := setupLogging(debugLogging == "true"); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		log.Printf("init failure: %+v", err)
		os.Exit(1)
	}
}

// run plays one session and returns only initialization errors
func run() error {
	session := uuid.New()

	cfg := engine.DefaultConfig()
	cfg.Variant = engine.VariantTwin
	cfg.Seed = uint64(time.Now().UnixNano())

	log.Printf("session %s starting: variant=%s seed=%d", session, cfg.Variant, cfg.Seed)

	game, err := engine.Open(newPlatform(), cfg, engine.NewMonotonicClock())
	if err != nil {
		return err
	}
	defer game.Close()

	reason := game.Run()
	log.Printf("session %s stopped: reason=%s frames=%d", session, reason, game.Frames())
	return nil
}
