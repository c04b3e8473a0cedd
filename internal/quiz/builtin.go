package quiz

// QuestionCount is the number of questions in the built-in quiz.
const QuestionCount = 7

// Result tier thresholds of the built-in quiz (inclusive minimums).
const (
	MastermindMin = 15
	SurvivorMin   = 10
	StrugglerMin  = 6
)

// Default returns the built-in "Will You Survive CS52?" quiz.
func Default() *Quiz {
	return &Quiz{
		Title: "Will You Survive CS52?",
		Intro: "Seven questions. No wrong answers, only revealing ones.\nFind out how you'll fare in CS52.",
		Questions: []Question{
			{
				Prompt: "It's 2 a.m. and your flexbox layout is still broken. What do you do?",
				Options: []Option{
					{Label: "Open DevTools and inspect every box until it makes sense", Weight: 3},
					{Label: "Paste the first Stack Overflow answer I find", Weight: 2},
					{Label: "Add !important to everything", Weight: 1},
					{Label: "Close the laptop and accept fate", Weight: 0},
				},
			},
			{
				Prompt: "How do you feel about JavaScript's `this` keyword?",
				Options: []Option{
					{Label: "I can explain it, arrow functions and bind included", Weight: 3},
					{Label: "I understand it most days", Weight: 2},
					{Label: "I console.log(this) and hope", Weight: 1},
					{Label: "What is this?", Weight: 0},
				},
			},
			{
				Prompt: "A lab is due in six hours. Where are you?",
				Options: []Option{
					{Label: "Done, deployed, polishing the extra credit", Weight: 3},
					{Label: "Mostly working, a few bugs left", Weight: 2},
					{Label: "I have a README", Weight: 1},
					{Label: "Which lab?", Weight: 0},
				},
			},
			{
				Prompt: "Your git history looks like:",
				Options: []Option{
					{Label: "Small, descriptive commits on feature branches", Weight: 3},
					{Label: "A handful of commits called \"fix\"", Weight: 2},
					{Label: "One commit: \"final final v3\"", Weight: 1},
					{Label: "I edit files directly on GitHub", Weight: 0},
				},
			},
			{
				Prompt: "Office hours just opened. You:",
				Options: []Option{
					{Label: "Show up with a specific question and a minimal repro", Weight: 3},
					{Label: "Go when I'm truly stuck", Weight: 2},
					{Label: "Lurk in Slack instead", Weight: 1},
					{Label: "Office hours?", Weight: 0},
				},
			},
			{
				Prompt: "React re-rendered your component forty times. Your move:",
				Options: []Option{
					{Label: "Check the dependency arrays and memoize what matters", Weight: 3},
					{Label: "Add another useEffect and see what happens", Weight: 2},
					{Label: "Refresh the page until it stops", Weight: 1},
					{Label: "Switch back to jQuery", Weight: 0},
				},
			},
			{
				Prompt: "How much sleep did you get this week?",
				Options: []Option{
					{Label: "A healthy seven hours a night", Weight: 3},
					{Label: "Enough to function", Weight: 2},
					{Label: "Naps between labs count, right?", Weight: 1},
					{Label: "Sleep is a deprecated API", Weight: 0},
				},
			},
		},
		Tiers: []Tier{
			{
				MinScore:    MastermindMin,
				Title:       "CS52 Mastermind",
				Description: "You've got what it takes to survive and thrive in CS52! Debugging and styling are no match for your skills. Keep crushing it!",
			},
			{
				MinScore:    SurvivorMin,
				Title:       "CS52 Survivor",
				Description: "It's tough, but you've got the grit to pull through. Just don't forget to ask for help when you need it!",
			},
			{
				MinScore:    StrugglerMin,
				Title:       "CS52 Struggler (but with Style)",
				Description: "You're keeping up... kind of. The struggle is real, but so is your determination. You'll make it, eventually!",
			},
			{
				MinScore:    0,
				Title:       "CS52 Dropout (Emotionally)",
				Description: "You're mentally done, but hey, you showed up. Maybe next time, JavaScript will be kinder to you.",
			},
		},
	}
}
