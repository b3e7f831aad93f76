package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate a shell completion for vulntriage",
	Long: `To load completions:

Bash:

$ source <(vulntriage completion bash)

# To load completions for each session, execute once:
Linux:
  $ vulntriage completion bash > /etc/bash_completion.d/vulntriage
MacOS:
  $ vulntriage completion bash > /usr/local/etc/bash_completion.d/vulntriage

Zsh:

$ vulntriage completion zsh > "${fpath[1]}/_vulntriage"

Fish:

$ vulntriage completion fish > ~/.config/fish/completions/vulntriage.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.ExactValidArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		default:
			return cmd.Root().GenBashCompletion(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
