package factory

import (
	"fmt"

	"github.com/automoto/windowwalker/archetypes"
	"github.com/automoto/windowwalker/components"
	"github.com/automoto/windowwalker/desktop"
	"github.com/automoto/windowwalker/layout"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDesktop spawns the desktop singleton for a real window provider.
func CreateDesktop(ecs *ecs.ECS, provider desktop.Provider) (*donburi.Entry, error) {
	bounds, err := provider.Bounds()
	if err != nil {
		return nil, fmt.Errorf("desktop bounds: %w", err)
	}
	d := archetypes.Desktop.Spawn(ecs)
	components.Desktop.SetValue(d, components.DesktopData{
		Source: provider,
		Bounds: bounds,
	})
	return d, nil
}

// CreateSandboxDesktop spawns the desktop singleton for a simulated layout.
func CreateSandboxDesktop(ecs *ecs.ECS, sb *layout.Sandbox) *donburi.Entry {
	bounds, _ := sb.Bounds()
	d := archetypes.Desktop.Spawn(ecs)
	components.Desktop.SetValue(d, components.DesktopData{
		Source:  sb,
		Bounds:  bounds,
		Sandbox: sb,
	})
	return d
}
