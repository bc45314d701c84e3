package commands

import (
	"log/slog"
	"slices"
	"sort"
	"strings"
)

const (
	msgNoParse  = "I don't understand that."
	msgNoMatch  = "I don't know how to do that."
	msgInternal = "Something went wrong."
)

// Dispatcher holds the ordered handler chain for one game session. Handler
// order is load-bearing: more specific handlers (put-in-container) are
// registered before generic fallbacks (authored interactions). The
// dispatcher itself is stateless per call; all game state lives behind the
// Env.
type Dispatcher struct {
	env      *Env
	handlers []Handler
	move     *MoveHandler
	log      *slog.Logger
}

// NewDispatcher builds the canonical chain for a session.
func NewDispatcher(env *Env) *Dispatcher {
	d := &Dispatcher{
		env:  env,
		move: NewMoveHandler(env),
		log:  slog.Default(),
	}

	d.handlers = []Handler{
		NewPutHandler(env),
		NewClosureHandler(env),
		NewTakeHandler(env),
		NewDropHandler(env),
		NewSwitchHandler(env),
		NewReadHandler(env),
		NewExamineHandler(env),
		NewLookHandler(env),
		d.move,
		NewEnterHandler(env, d.move),
		NewClimbHandler(env, d.move),
		NewInventoryHandler(env),
		NewScoreHandler(env),
		NewHelpHandler(d),
		NewInteractionHandler(env),
	}

	return d
}

// Dispatch runs one line of input through parse and the handler chain.
// The turn counter is advanced here, never by handlers, and only when a
// handler reports a successful, time-consuming action. A panic inside a
// handler is caught and surfaced as a generic failure with no turn consumed.
func (d *Dispatcher) Dispatch(raw string) Result {
	cmd, err := ParseCommand(raw)
	if err != nil {
		return Failure(msgNoParse)
	}

	res := d.execute(cmd)
	if res.Success && res.IncrementTurn {
		d.env.Resolve.Progress.IncrementTurns()
	}
	return res
}

func (d *Dispatcher) execute(cmd *Command) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("handler panic", "input", cmd.Raw, "panic", r)
			res = Failure(msgInternal)
		}
	}()

	// Bare directions route straight to movement.
	if cmd.Object == "" && cmd.Target == "" && IsDirection(cmd.Verb) {
		return d.move.Go(cmd.Verb)
	}

	for _, h := range d.handlers {
		if h.CanHandle(cmd) {
			return h.Handle(cmd)
		}
	}

	return Failure(msgNoMatch)
}

// Suggestions aggregates handler suggestion lists, filtered by prefix match
// against the partial input and de-duplicated.
func (d *Dispatcher) Suggestions(partial string) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))

	var out []string
	for _, h := range d.handlers {
		for _, s := range h.Suggestions() {
			if partial != "" && !strings.HasPrefix(s, partial) {
				continue
			}
			if !slices.Contains(out, s) {
				out = append(out, s)
			}
		}
	}
	sort.Strings(out)
	return out
}

// KnownVerbs returns the command vocabulary for the sidebar and help text.
func (d *Dispatcher) KnownVerbs() []string {
	return d.Suggestions("")
}
