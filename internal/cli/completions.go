package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// completeEnvironments provides shell completion for the --environment flag.
func completeEnvironments(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, env := range dwgate.Environments {
		if strings.HasPrefix(env, toComplete) {
			completions = append(completions, env)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
