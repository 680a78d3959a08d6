package systems

import (
	"fmt"
	"log"
	"strings"

	cfg "github.com/automoto/windowwalker/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateConfig applies config file edits while the scene runs.
func UpdateConfig(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	if settings.Watcher == nil {
		return
	}

	before := cfg.Current()
	reloaded, err := settings.Watcher.Poll()
	if err != nil {
		log.Printf("[config] reload failed, keeping previous values: %v", err)
		ShowMessage(ecs, fmt.Sprintf("config error: %v", err), true)
		return
	}
	if !reloaded {
		return
	}

	log.Println("[config] reloaded")
	ApplyWalkerConfig(ecs)

	if keys := cfg.RestartRequired(before, cfg.Current()); len(keys) > 0 {
		log.Printf("[config] restart to apply: %s", strings.Join(keys, ", "))
		ShowMessage(ecs, "config reloaded, restart to apply "+strings.Join(keys, ", "), false)
		return
	}
	ShowMessage(ecs, "config reloaded", false)
}
