package domain

// StrategyID identifies one computation strategy within a module.
type StrategyID string

// ModuleDescriptor is the immutable catalog metadata of a calculation module.
type ModuleDescriptor struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}
