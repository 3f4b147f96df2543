package main

import (
	"fmt"
)

// Run executes the queries command.
func (c *QueriesCmd) Run(deps *Dependencies) error {
	states := deps.Vocab.ValidStates(c.States)
	if len(states) == 0 {
		return fmt.Errorf("no recognized states in %v", c.States)
	}

	for _, q := range deps.Vocab.SearchQueries(states) {
		fmt.Fprintln(deps.Stdout, q)
	}
	return nil
}
