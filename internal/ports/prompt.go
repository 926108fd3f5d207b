package ports

// Prompter asks the user a yes/no question.
// When no terminal is attached it must not block: it returns false for
// destructive questions (defaultYes false) and defaultYes otherwise.
type Prompter interface {
	Ask(question string, defaultYes bool) bool
}
