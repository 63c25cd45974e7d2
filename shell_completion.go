package main

import "go.abhg.dev/komplete"

type shellCompletionCmd struct {
	*komplete.Command `embed:""`
}

func (c *shellCompletionCmd) Help() string {
	return helpText(`
		To set up shell completion, eval the output of this command
		from your shell's rc file.
		For example:

			# bash
			eval "$(textalign shell completion bash)"

			# zsh
			eval "$(textalign shell completion zsh)"

			# fish
			textalign shell completion fish | source

		If shell name is not provided, the current shell is guessed
		using a heuristic.
	`)
}
