package repositories

// PromptRepository asks the operator for secrets.
type PromptRepository interface {
	Password(message string) (string, error)
}
