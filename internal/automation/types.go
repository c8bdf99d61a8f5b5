package automation

import (
	"fmt"

	"desktop-assistant/internal/intent"
)

// Command is one automation step: a verb and its argument.
type Command struct {
	Verb intent.Category
	Arg  string
}

func (c Command) String() string {
	return fmt.Sprintf("%s %s", c.Verb, c.Arg)
}

// Outcome is the result of one command.
type Outcome struct {
	Command Command
	OK      bool
	Err     error
}

// Failures counts failed outcomes.
func Failures(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.OK {
			n++
		}
	}
	return n
}

// FromIntent converts an automation intent into a Command.
func FromIntent(it intent.Intent) Command {
	return Command{Verb: it.Category, Arg: it.Payload}
}
