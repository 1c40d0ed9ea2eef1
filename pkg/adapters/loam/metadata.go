package loam

// ExerciseMetadata represents the frontmatter of an exercise document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type ExerciseMetadata struct {
	ID    string `json:"id" mapstructure:"id"`
	Title string `json:"title" mapstructure:"title"`
	Input string `json:"input" mapstructure:"input"`
	// Expect accepts strings ("valid", "invalid", "ok"...) and booleans.
	Expect any    `json:"expect" mapstructure:"expect"`
	Reason string `json:"reason" mapstructure:"reason"`
}
