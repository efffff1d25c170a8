package session

// IO is the presentation boundary consumed by the engine and variants. The
// core performs all validation through the supplied callbacks; the IO layer
// owns the re-prompt loop and holds no game state.
type IO interface {
	// RequestWager prompts for a wager amount and calls place with it,
	// re-prompting while place returns an error. A non-nil return means the
	// player abandoned the prompt (EOF or interrupt) with nothing placed.
	RequestWager(balance int, place func(amount int) error) error

	// RequestChoice prompts with the given options and calls apply with the
	// entered choice, re-prompting while apply returns an error.
	RequestChoice(prompt string, options []string, apply func(choice string) error) error

	// Render delivers a display event. Fire-and-forget: the core never
	// inspects a result.
	Render(ev Event)
}
