package quiz

// Option is one selectable answer and the animal it scores for.
type Option struct {
	Label  string
	Animal Animal
}

// Question is a static quiz question. Questions are never mutated.
type Question struct {
	Text    string
	Options []Option
}

var defaultQuestions = []Question{
	{
		Text: "What is your favorite type of activity?",
		Options: []Option{
			{Label: "Chasing mice", Animal: Cat},
			{Label: "Playing fetch", Animal: Dog},
			{Label: "Hunting in the woods", Animal: Fox},
			{Label: "Nibbling on seeds", Animal: Hamster},
			{Label: "Racing across fields", Animal: Horse},
		},
	},
	{
		Text: "How do you prefer to spend your free time?",
		Options: []Option{
			{Label: "Lounging on a sunny windowsill", Animal: Cat},
			{Label: "Going for a walk with friends", Animal: Dog},
			{Label: "Exploring new trails", Animal: Fox},
			{Label: "Staying cozy in a nest", Animal: Hamster},
			{Label: "Galloping in open spaces", Animal: Horse},
		},
	},
	{
		Text: "What is your ideal sleeping position?",
		Options: []Option{
			{Label: "On a soft cushion", Animal: Cat},
			{Label: "Snuggled up with a buddy", Animal: Dog},
			{Label: "In a hidden burrow", Animal: Fox},
			{Label: "In a tight ball", Animal: Hamster},
			{Label: "Standing tall", Animal: Horse},
		},
	},
	{
		Text: "Which trait describes you best?",
		Options: []Option{
			{Label: "Independent", Animal: Cat},
			{Label: "Loyal", Animal: Dog},
			{Label: "Clever", Animal: Fox},
			{Label: "Curious", Animal: Hamster},
			{Label: "Strong", Animal: Horse},
		},
	},
	{
		Text: "What kind of environment do you thrive in?",
		Options: []Option{
			{Label: "Quiet and cozy", Animal: Cat},
			{Label: "Social and active", Animal: Dog},
			{Label: "Wild and free", Animal: Fox},
			{Label: "Small and safe", Animal: Hamster},
			{Label: "Open and expansive", Animal: Horse},
		},
	},
}

// DefaultQuestions returns the built-in question bank.
// The returned slice is shared; callers must not modify it.
func DefaultQuestions() []Question {
	return defaultQuestions
}
