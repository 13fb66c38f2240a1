package main

import (
	"strings"

	"github.com/jacksmith/sms/internal/storage"
	"github.com/spf13/cobra"
)

// completeRollNumbers completes the first argument with stored roll numbers.
func completeRollNumbers(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	repo, err := openRepository()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer storage.Close(repo)

	students, err := repo.ListAll()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	seen := make(map[string]bool)
	var rolls []string
	for _, s := range students {
		if seen[s.RollNumber] || !strings.HasPrefix(s.RollNumber, toComplete) {
			continue
		}
		seen[s.RollNumber] = true
		rolls = append(rolls, s.RollNumber)
	}
	return rolls, cobra.ShellCompDirectiveNoFileComp
}

func completeBackends(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return storage.Backends, cobra.ShellCompDirectiveNoFileComp
}
