package player

import (
	"fmt"
	"strings"

	"github.com/unoline/uno/ui"
)

// Human prompts a terminal user for each decision.
type Human struct {
	name string
}

func NewHuman(name string) *Human {
	return &Human{name: name}
}

func (h *Human) Name() string {
	return h.name
}

func (h *Human) Decide(snapshot Snapshot) []Decision {
	h.showTable(snapshot)
	for {
		command := strings.Fields(strings.ToLower(ui.PromptString(
			"Your move: play <index>, draw, uno, or catch <seat>",
		)))
		if len(command) == 0 {
			continue
		}
		switch command[0] {
		case "play":
			decision, ok := h.parsePlay(command, snapshot)
			if ok {
				return []Decision{decision}
			}
		case "draw":
			return []Decision{{Action: ActionDraw}}
		case "uno":
			return []Decision{{Action: ActionSayUno}}
		case "catch":
			decision, ok := h.parseCatch(command, snapshot)
			if ok {
				return []Decision{decision}
			}
		default:
			ui.Printfln("Unknown command '%s'", command[0])
		}
	}
}

func (h *Human) showTable(snapshot Snapshot) {
	lines := []string{
		fmt.Sprintf("Top of discard: %s (active color %s)", ui.FormatCard(snapshot.Top), snapshot.ActiveColor),
	}
	var seats []string
	for i, name := range snapshot.Players {
		seats = append(seats, fmt.Sprintf("%s (%d card(s))", name, snapshot.HandSizes[i]))
	}
	lines = append(lines,
		fmt.Sprintf("Table: %s", strings.Join(seats, ", ")),
		fmt.Sprintf("Your hand: %s", ui.FormatHand(snapshot.Hand)),
	)
	if len(snapshot.Playable) > 0 {
		lines = append(lines, fmt.Sprintf("Playable indices: %v", snapshot.Playable))
	} else {
		lines = append(lines, "No playable card; you will have to draw")
	}
	ui.Printlns(lines)
}

func (h *Human) parsePlay(command []string, snapshot Snapshot) (Decision, bool) {
	if len(command) > 2 {
		ui.Println("Usage: play <index>")
		return Decision{}, false
	}
	var index int
	if len(command) == 2 {
		if _, err := fmt.Sscanf(command[1], "%d", &index); err != nil {
			ui.Printfln("'%s' is not a card index", command[1])
			return Decision{}, false
		}
		if index < 0 || index >= len(snapshot.Hand) {
			ui.Printfln("No card at index %d", index)
			return Decision{}, false
		}
	} else {
		// a bare "play" asks for the index separately
		index = ui.PromptIntegerInRange(0, len(snapshot.Hand)-1, "Which card index?")
	}
	decision := Decision{Action: ActionPlay, CardIndex: index}
	if isWildMemento(snapshot.Hand[index]) {
		decision.Color = ui.PromptColor()
	}
	return decision, true
}

func (h *Human) parseCatch(command []string, snapshot Snapshot) (Decision, bool) {
	if len(command) != 2 {
		ui.Println("Usage: catch <seat>")
		return Decision{}, false
	}
	var accused int
	if _, err := fmt.Sscanf(command[1], "%d", &accused); err != nil {
		ui.Printfln("'%s' is not a seat", command[1])
		return Decision{}, false
	}
	if accused < 0 || accused >= len(snapshot.Players) {
		ui.Printfln("No seat %d at this table", accused)
		return Decision{}, false
	}
	return Decision{Action: ActionCatchUno, Accused: accused}, true
}
