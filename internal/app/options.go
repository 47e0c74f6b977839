package app

import (
	"errors"
	"strings"
)

// Options are the positional inputs of a run
type Options struct {
	// Target is a repository path or a GitLab project URL
	Target  string
	First   string
	Last    string
	Project string
	Release string
}

// OptionsFromArgs maps the five positional arguments onto Options
func OptionsFromArgs(args []string) (Options, error) {
	if len(args) != 5 {
		return Options{}, errors.New("expected 5 arguments: <path|url> <first> <last> <project> <release>")
	}

	names := []string{"repository path or URL", "first revision", "last revision", "project name", "release name"}
	for i, arg := range args {
		if strings.TrimSpace(arg) == "" {
			return Options{}, errors.New(names[i] + " must not be empty")
		}
	}

	return Options{
		Target:  args[0],
		First:   args[1],
		Last:    args[2],
		Project: args[3],
		Release: args[4],
	}, nil
}
