package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/questband/internal/combat"
	"github.com/samdwyer/questband/internal/telemetry"
	"github.com/samdwyer/questband/internal/ui"
)

const (
	invalidOptionLine = "invalid option. please try again."
	goBackLine        = "returning to main menu..."
)

// readChoice reads one menu choice. A non-numeric token is folded into -1 so
// it falls through menu switches like any other out-of-range value. Any
// other read error (including end of input) is returned so the loop can
// terminate.
func (g *Game) readChoice(prompt string) (int, error) {
	choice, err := g.console.ReadInt(prompt)
	if err != nil {
		if errors.Is(err, ui.ErrNotNumber) {
			return -1, nil
		}
		return 0, err
	}
	return choice, nil
}

// handleMainMenu shows the top-level menu and returns the next state.
func (g *Game) handleMainMenu(_ context.Context) State {
	g.console.Println("")
	g.console.Println("🌟 game menu 🌟")
	g.console.Println("1. change attack mode")
	g.console.Println("2. select fight mode")
	g.console.Println("3. perform game action")
	g.console.Println("4. apply effect to character")
	g.console.Println("5. exit")
	g.console.Println("────────────────────────────────")

	choice, err := g.readChoice("choose an option (1-5): ")
	if err != nil {
		return StateExit
	}

	switch choice {
	case 1:
		return StateChangeAttackMode
	case 2:
		return StateSelectFightMode
	case 3:
		return StatePerformAction
	case 4:
		return StateApplyEffect
	case 5:
		return StateExit
	default:
		g.console.Println(invalidOptionLine)
		return StateMainMenu
	}
}

// handleChangeAttackMode shows the attack mode submenu and applies the
// selection. Every path returns to the main menu.
func (g *Game) handleChangeAttackMode(ctx context.Context) State {
	modes := g.catalog.AttackModes()

	g.console.Println("")
	g.console.Println("🔄 choose a new attack mode:")
	for i := range modes {
		g.console.Printf("%d. %s\n", i+1, modes[i].Name)
	}
	g.console.Printf("%d. go back\n", len(modes)+1)

	choice, err := g.readChoice(fmt.Sprintf("select attack mode (1-%d): ", len(modes)+1))
	if err != nil {
		return StateExit
	}

	switch {
	case choice >= 1 && choice <= len(modes):
		mode, err := combat.NewAttackMode(&modes[choice-1])
		if err != nil {
			g.console.Println(invalidOptionLine)
			return StateMainMenu
		}
		g.char.SetAttackMode(mode)
		g.console.Printf("🌀 attack mode changed to: %s\n", mode.Name())
		g.traceModeChange(ctx, "attack_mode", mode.ID())
	case choice == len(modes)+1:
		g.console.Println(goBackLine)
	default:
		g.console.Println(invalidOptionLine)
	}
	return StateMainMenu
}

// handleSelectFightMode shows the fight mode submenu and applies the
// selection.
func (g *Game) handleSelectFightMode(ctx context.Context) State {
	modes := g.catalog.FightModes()

	g.console.Println("")
	g.console.Println("⚔️ choose a new fight mode:")
	for i := range modes {
		g.console.Printf("%d. %s\n", i+1, modes[i].Name)
	}
	g.console.Printf("%d. go back\n", len(modes)+1)

	choice, err := g.readChoice(fmt.Sprintf("select fight mode (1-%d): ", len(modes)+1))
	if err != nil {
		return StateExit
	}

	switch {
	case choice >= 1 && choice <= len(modes):
		mode, err := combat.NewFightMode(&modes[choice-1])
		if err != nil {
			g.console.Println(invalidOptionLine)
			return StateMainMenu
		}
		g.char.SetFightMode(mode)
		g.console.Printf("⚔️ fight mode changed to: %s\n", mode.Name())
		g.traceModeChange(ctx, "fight_mode", mode.ID())
	case choice == len(modes)+1:
		g.console.Println(goBackLine)
	default:
		g.console.Println(invalidOptionLine)
	}
	return StateMainMenu
}

// handlePerformAction shows the action submenu and executes the selection
// through the fixed action frame.
func (g *Game) handlePerformAction(ctx context.Context) State {
	actions := g.catalog.Actions()

	g.console.Println("")
	g.console.Println("🎬 choose an action:")
	for i := range actions {
		g.console.Printf("%d. %s\n", i+1, actions[i].Name)
	}
	g.console.Printf("%d. go back\n", len(actions)+1)

	choice, err := g.readChoice(fmt.Sprintf("select action (1-%d): ", len(actions)+1))
	if err != nil {
		return StateExit
	}

	switch {
	case choice >= 1 && choice <= len(actions):
		action, err := combat.NewAction(&actions[choice-1])
		if err != nil {
			g.console.Println(invalidOptionLine)
			return StateMainMenu
		}

		_, span := telemetry.Tracer("combat").Start(ctx, "action.execute")
		for _, line := range combat.ExecuteAction(action, g.char) {
			g.console.Println(line)
		}
		span.SetAttributes(
			attribute.String("session.id", g.session),
			attribute.String("action.id", action.ID()),
			attribute.Int("character.hp", g.char.GetHP()),
			attribute.Int("character.strength", g.char.GetStrength()),
		)
		span.End()
	case choice == len(actions)+1:
		g.console.Println(goBackLine)
	default:
		g.console.Println(invalidOptionLine)
	}
	return StateMainMenu
}

// handleApplyEffect shows the effect submenu and applies the selection.
func (g *Game) handleApplyEffect(ctx context.Context) State {
	effects := g.catalog.Effects()

	g.console.Println("")
	g.console.Println("💥 choose an effect:")
	for i := range effects {
		g.console.Printf("%d. %s\n", i+1, effects[i].Name)
	}
	g.console.Printf("%d. go back\n", len(effects)+1)

	choice, err := g.readChoice(fmt.Sprintf("select effect (1-%d): ", len(effects)+1))
	if err != nil {
		return StateExit
	}

	switch {
	case choice >= 1 && choice <= len(effects):
		effect, err := combat.NewEffect(&effects[choice-1])
		if err != nil {
			g.console.Println(invalidOptionLine)
			return StateMainMenu
		}

		_, span := telemetry.Tracer("combat").Start(ctx, "effect.apply")
		// Both capabilities run on whichever effect was chosen, boost first;
		// the inapplicable one is inert and prints nothing.
		if line := effect.ApplyBoost(g.char); line != "" {
			g.console.Println(line)
		}
		if line := effect.ApplyDamage(g.char); line != "" {
			g.console.Println(line)
		}
		span.SetAttributes(
			attribute.String("session.id", g.session),
			attribute.String("effect.id", effect.ID()),
			attribute.Int("character.hp", g.char.GetHP()),
			attribute.Int("character.strength", g.char.GetStrength()),
		)
		span.End()
	case choice == len(effects)+1:
		g.console.Println(goBackLine)
	default:
		g.console.Println(invalidOptionLine)
	}
	return StateMainMenu
}

// traceModeChange records a mode change span.
func (g *Game) traceModeChange(ctx context.Context, kind, id string) {
	_, span := telemetry.Tracer("menu").Start(ctx, "menu.change_mode")
	span.SetAttributes(
		attribute.String("session.id", g.session),
		attribute.String("mode.kind", kind),
		attribute.String("mode.id", id),
	)
	span.End()
}
