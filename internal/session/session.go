// Package session ties one connected player to one running game: world,
// state, dispatcher, saves, and the NATS mirror.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/state"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-adventure/internal/world"
)

// Publisher mirrors session activity to an external bus. May be nil.
type Publisher interface {
	Output(sessionId, text string) error
	Status(sessionId string, status messaging.SessionStatus) error
}

type Session struct {
	id   string
	name string
	conn io.ReadWriter

	world      *world.World
	env        *commands.Env
	dispatcher *commands.Dispatcher
	saves      storage.SaveStore
	pub        Publisher

	// mu guards game state against the autosave tick racing the play loop.
	mu   sync.Mutex
	quit bool
}

func New(w *world.World, conn io.ReadWriter, saves storage.SaveStore, pub Publisher) *Session {
	gs := state.New(w.StartScene())
	gs.MaxScore = w.MaxScore()
	w.SeedState(gs)
	env := commands.NewEnv(w, gs)

	return &Session{
		id:         uuid.NewString(),
		conn:       conn,
		world:      w,
		env:        env,
		dispatcher: commands.NewDispatcher(env),
		saves:      saves,
		pub:        pub,
	}
}

// Id returns the session's unique identifier.
func (s *Session) Id() string {
	return s.id
}

// Play runs the session until the player quits, the connection drops, or
// the context is cancelled.
func (s *Session) Play(ctx context.Context) error {
	if err := s.startFlow(ctx); err != nil {
		return err
	}

	// Show the player where they are before the first prompt.
	if err := s.writeBlock(s.look()); err != nil {
		return err
	}

	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.conn)
		for scanner.Scan() {
			inputChan <- scanner.Text()
		}
		inputErrChan <- scanner.Err()
		close(inputChan)
	}()

	for {
		if err := s.prompt(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-inputChan:
			if !ok {
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			out, err := s.Exec(ctx, line)
			if err != nil {
				return err
			}
			if out != "" {
				if err := s.writeBlock(out); err != nil {
					return err
				}
			}
			if s.quit {
				return nil
			}
		}
	}
}

// Exec runs one line of input, meta commands included, and returns the text
// shown to the player.
func (s *Session) Exec(ctx context.Context, line string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if out, handled, err := s.metaCommand(ctx, line); handled || err != nil {
		return out, err
	}

	res := s.dispatcher.Dispatch(line)
	s.publish(res.Message)
	return res.Message, nil
}

// metaCommand handles session-level commands that live outside the game
// world: save, restore, saves, quit.
func (s *Session) metaCommand(ctx context.Context, line string) (string, bool, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return "", false, nil
	}

	switch fields[0] {
	case "save":
		slot := s.defaultSlot()
		if len(fields) > 1 {
			slot = storage.NormalizeSlot(strings.Join(fields[1:], " "))
		}
		if slot == "" {
			return "That isn't a usable save name.", true, nil
		}
		if err := s.saves.Save(ctx, slot, s.env.State.Snapshot()); err != nil {
			slog.ErrorContext(ctx, "saving game", "session", s.id, "slot", slot, "error", err)
			return "The save failed. Try again.", true, nil
		}
		return fmt.Sprintf("Saved as %q.", slot), true, nil

	case "restore", "load":
		slot := s.defaultSlot()
		if len(fields) > 1 {
			slot = storage.NormalizeSlot(strings.Join(fields[1:], " "))
		}
		gs, err := s.saves.Load(ctx, slot)
		if errors.Is(err, storage.ErrSaveNotFound) {
			return fmt.Sprintf("There is no save named %q.", slot), true, nil
		}
		if err != nil {
			slog.ErrorContext(ctx, "loading game", "session", s.id, "slot", slot, "error", err)
			return "The restore failed. Try again.", true, nil
		}
		s.env.State.Restore(gs)
		return fmt.Sprintf("Restored %q.\n\n%s", slot, s.look()), true, nil

	case "saves":
		slots, err := s.saves.List(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "listing saves", "session", s.id, "error", err)
			return "Couldn't list saves.", true, nil
		}
		if len(slots) == 0 {
			return "There are no saved games.", true, nil
		}
		return "Saved games: " + strings.Join(slots, ", "), true, nil

	case "quit":
		s.quit = true
		return "Goodbye!", true, nil
	}

	return "", false, nil
}

// Autosave persists the current state under the session's own slot.
func (s *Session) Autosave(ctx context.Context) error {
	s.mu.Lock()
	snap := s.env.State.Snapshot()
	s.mu.Unlock()

	return s.saves.Save(ctx, s.defaultSlot(), snap)
}

// startFlow asks who is playing and offers to restore an existing save
// before play begins.
func (s *Session) startFlow(ctx context.Context) error {
	name, err := Prompt(s.conn, "What is your name? ", WithValidator(
		func(str string) (bool, string) {
			if str == "" {
				return false, "A name, please.\n"
			}
			return true, ""
		}))
	if err != nil {
		return err
	}
	s.name = name

	if _, err := fmt.Fprintf(s.conn, "Hello, %s.\n\n", name); err != nil {
		return err
	}

	slots, err := s.saves.List(ctx)
	if err != nil {
		slog.WarnContext(ctx, "listing saves", "session", s.id, "error", err)
		return nil
	}
	if len(slots) == 0 {
		return nil
	}

	options := append([]string{"Start a new game"}, slots...)
	choice, err := PromptChoice(s.conn, "Welcome back. Restore a saved game?", options)
	if err != nil {
		return err
	}
	if choice == 0 {
		return nil
	}

	gs, err := s.saves.Load(ctx, slots[choice-1])
	if err != nil {
		return fmt.Errorf("restoring save %q: %w", slots[choice-1], err)
	}
	s.env.State.Restore(gs)
	return nil
}

func (s *Session) defaultSlot() string {
	if slot := storage.NormalizeSlot(s.name); slot != "" {
		return slot
	}
	return "session-" + s.id
}

func (s *Session) look() string {
	msg := commands.DescribeScene(s.env)
	s.publish(msg)
	return msg
}

func (s *Session) publish(msg string) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Output(s.id, msg); err != nil {
		slog.Warn("publishing session output", "session", s.id, "error", err)
	}
	err := s.pub.Status(s.id, messaging.SessionStatus{
		Scene:        s.env.State.CurrentScene,
		Score:        s.env.State.Score,
		MaxScore:     s.env.State.MaxScore,
		Turns:        s.env.State.Turns,
		Exits:        commands.VisibleExits(s.env),
		KnownObjects: s.env.State.KnownObjects(),
	})
	if err != nil {
		slog.Warn("publishing session status", "session", s.id, "error", err)
	}
}

func (s *Session) prompt() error {
	s.mu.Lock()
	line := display.StatusLine(s.sceneName(), s.env.State.Score, s.env.State.MaxScore, s.env.State.Turns)
	s.mu.Unlock()

	_, err := s.conn.Write([]byte(line + "\n> "))
	return err
}

func (s *Session) sceneName() string {
	if scene := s.world.Scene(s.env.State.CurrentScene); scene != nil {
		return scene.Name
	}
	return s.env.State.CurrentScene
}

func (s *Session) writeBlock(msg string) error {
	_, err := s.conn.Write([]byte(display.Wrap(msg) + "\n\n"))
	return err
}
