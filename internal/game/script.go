package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OCharnyshevich/tileworld/internal/player"
)

var scriptKeys = map[string]player.Key{
	"left":  player.KeyLeft,
	"right": player.KeyRight,
	"jump":  player.KeyJump,
}

type scriptStep struct {
	keys  map[player.Key]bool
	ticks int
}

// Script is a canned input sequence. Each step holds a set of keys for a
// number of ticks; once the steps run out nothing is pressed.
type Script struct {
	steps []scriptStep
	step  int
	tick  int
}

// ParseScript reads a space separated list of steps such as
// "right*60 right+jump*5 idle*30". A step without a count lasts one tick.
func ParseScript(s string) (*Script, error) {
	sc := &Script{}
	for _, tok := range strings.Fields(s) {
		keys, count, hasCount := strings.Cut(tok, "*")

		ticks := 1
		if hasCount {
			n, err := strconv.Atoi(count)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("script step %q: bad tick count", tok)
			}
			ticks = n
		}

		step := scriptStep{keys: make(map[player.Key]bool), ticks: ticks}
		if keys != "idle" {
			for _, name := range strings.Split(keys, "+") {
				k, ok := scriptKeys[name]
				if !ok {
					return nil, fmt.Errorf("script step %q: unknown key %q", tok, name)
				}
				step.keys[k] = true
			}
		}
		sc.steps = append(sc.steps, step)
	}
	return sc, nil
}

func (s *Script) IsKeyPressed(k player.Key) bool {
	if s.Done() {
		return false
	}
	return s.steps[s.step].keys[k]
}

// Advance moves the script forward by one tick.
func (s *Script) Advance() {
	if s.Done() {
		return
	}
	s.tick++
	if s.tick >= s.steps[s.step].ticks {
		s.step++
		s.tick = 0
	}
}

// Done reports whether every step has been played.
func (s *Script) Done() bool {
	return s.step >= len(s.steps)
}
