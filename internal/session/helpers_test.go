package session

import (
	"errors"
)

// errScriptExhausted signals that a scripted IO ran out of inputs.
var errScriptExhausted = errors.New("script exhausted")

// scriptIO is an IO implementation fed from canned inputs, recording every
// rendered event.
type scriptIO struct {
	wagers  []int
	choices []string
	events  []Event
}

func (s *scriptIO) RequestWager(balance int, place func(amount int) error) error {
	for len(s.wagers) > 0 {
		amount := s.wagers[0]
		s.wagers = s.wagers[1:]
		if err := place(amount); err != nil {
			continue
		}
		return nil
	}
	return errScriptExhausted
}

func (s *scriptIO) RequestChoice(prompt string, options []string, apply func(choice string) error) error {
	for len(s.choices) > 0 {
		choice := s.choices[0]
		s.choices = s.choices[1:]
		if err := apply(choice); err != nil {
			continue
		}
		return nil
	}
	return errScriptExhausted
}

func (s *scriptIO) Render(ev Event) {
	s.events = append(s.events, ev)
}

// eventsOf returns all recorded events of type T.
func eventsOf[T any](s *scriptIO) []T {
	var out []T
	for _, ev := range s.events {
		if e, ok := ev.(T); ok {
			out = append(out, e)
		}
	}
	return out
}
