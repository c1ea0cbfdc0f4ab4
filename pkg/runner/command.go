package runner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/agrocalc/pkg/domain"
)

// CommandKind classifies a parsed input line.
type CommandKind int

const (
	// CommandEvent carries an event for the engine.
	CommandEvent CommandKind = iota
	CommandShow
	CommandReport
	CommandHelp
	CommandQuit
)

// Command is one parsed input line.
type Command struct {
	Kind  CommandKind
	Event domain.Event
	// Arg holds the report format.
	Arg string
}

// ErrEmptyCommand is returned for blank lines.
var ErrEmptyCommand = errors.New("empty command")

// ParseCommand turns a line into a Command. A line that is a JSON object is
// decoded as a raw domain.Event, so pipes can drive the engine directly.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrEmptyCommand
	}

	if strings.HasPrefix(line, "{") {
		var ev domain.Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			return Command{}, fmt.Errorf("invalid event: %w", err)
		}
		return Command{Kind: CommandEvent, Event: ev}, nil
	}

	if strings.HasPrefix(line, "#") {
		return Command{Kind: CommandEvent, Event: domain.Event{Type: domain.EventFragmentChange, Fragment: line}}, nil
	}

	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "modules", "list", "home":
		return Command{Kind: CommandEvent, Event: domain.Event{Type: domain.EventHome}}, nil
	case "select", "open":
		if rest == "" {
			return Command{}, fmt.Errorf("usage: select <ID>")
		}
		return Command{Kind: CommandEvent, Event: domain.Event{Type: domain.EventModuleSelect, Module: strings.ToUpper(rest)}}, nil
	case "set":
		field, value, ok := strings.Cut(rest, " ")
		if !ok || field == "" {
			if rest == "" {
				return Command{}, fmt.Errorf("usage: set <field> <value>")
			}
			// "set field" clears the field.
			field, value = rest, ""
		}
		return Command{Kind: CommandEvent, Event: domain.Event{
			Type:  domain.EventFieldEdit,
			Field: field,
			Value: strings.TrimSpace(value),
		}}, nil
	case "strategy":
		if rest == "" {
			return Command{}, fmt.Errorf("usage: strategy <id>")
		}
		return Command{Kind: CommandEvent, Event: domain.Event{Type: domain.EventStrategySelect, Strategy: domain.StrategyID(rest)}}, nil
	case "compute", "calc", "calcular":
		return Command{Kind: CommandEvent, Event: domain.Event{Type: domain.EventCompute}}, nil
	case "show":
		return Command{Kind: CommandShow}, nil
	case "report":
		return Command{Kind: CommandReport, Arg: rest}, nil
	case "help", "?":
		return Command{Kind: CommandHelp}, nil
	case "quit", "exit", "sair":
		return Command{Kind: CommandQuit}, nil
	default:
		return Command{}, fmt.Errorf("unknown command %q (type 'help')", verb)
	}
}

// HelpText lists the available commands.
const HelpText = `Comandos:
  modules              lista as calculadoras
  select <ID> | #<ID>  abre uma calculadora
  home                 volta ao catálogo
  set <campo> <valor>  altera um campo
  strategy <id>        troca o método de cálculo
  compute              calcula
  show                 mostra a tela atual
  report [formato]     exporta o relatório (markdown, json, yaml)
  help                 mostra esta ajuda
  quit                 sai`
