package game

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/questband/internal/combat"
	"github.com/samdwyer/questband/internal/entity"
	"github.com/samdwyer/questband/internal/gamedata"
	"github.com/samdwyer/questband/internal/telemetry"
	"github.com/samdwyer/questband/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	console *ui.Console
	catalog *gamedata.Catalog
	char    *entity.Character
	state   State
	session string
}

// New creates a new game instance with a fresh character in normal/melee
// modes.
func New(cfg Config) (*Game, error) {
	in := cfg.Input
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	attackMode, err := combat.NewAttackMode(catalog.AttackMode(combat.AttackModeNormal))
	if err != nil {
		return nil, fmt.Errorf("starting attack mode: %w", err)
	}
	fightMode, err := combat.NewFightMode(catalog.FightMode(combat.FightModeMelee))
	if err != nil {
		return nil, fmt.Errorf("starting fight mode: %w", err)
	}

	return &Game{
		console: ui.NewConsole(in, out),
		catalog: catalog,
		char:    entity.NewCharacter(attackMode, fightMode),
		state:   StateMainMenu,
		session: uuid.NewString(),
	}, nil
}

// Run executes the menu loop until the player exits or input ends.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("session.id", g.session),
		attribute.Int("character.hp", g.char.GetHP()),
		attribute.Int("character.strength", g.char.GetStrength()),
	)
	initSpan.End()

	g.console.Println("🎮 welcome to the adventure game!")

	for g.state != StateExit {
		if g.state == StateMainMenu {
			g.printStatus()
		}
		g.step(ctx)
	}

	_, exitSpan := tracer.Start(ctx, "game.exit")
	exitSpan.SetAttributes(
		attribute.String("session.id", g.session),
		attribute.Int("character.hp", g.char.GetHP()),
		attribute.Int("character.strength", g.char.GetStrength()),
	)
	exitSpan.End()

	g.console.Println("thank you for playing! see you on your next adventure!")
	return nil
}

// step handles the current state and moves to the next one.
func (g *Game) step(ctx context.Context) {
	switch g.state {
	case StateMainMenu:
		g.state = g.handleMainMenu(ctx)
	case StateChangeAttackMode:
		g.state = g.handleChangeAttackMode(ctx)
	case StateSelectFightMode:
		g.state = g.handleSelectFightMode(ctx)
	case StatePerformAction:
		g.state = g.handlePerformAction(ctx)
	case StateApplyEffect:
		g.state = g.handleApplyEffect(ctx)
	}
}

// printStatus prints the character's full status block.
func (g *Game) printStatus() {
	g.console.Println("")
	g.console.Println("✨ Character status ✨")
	g.console.Printf("Attack mode: %s\n", g.char.AttackMode().Name())
	g.console.Printf("Fight mode: %s\n", g.char.FightMode().Name())
	g.console.Printf("Hp: %d/%d\n", g.char.GetHP(), entity.MaxHP)
	g.console.Printf("Strength: %d/%d\n", g.char.GetStrength(), entity.MaxStrength)
	g.console.Println("---------------------------")
}
