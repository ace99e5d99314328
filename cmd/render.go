package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/klemjul/researchforge/internal/message"
	"github.com/spf13/cobra"
)

func renderCommand() *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chat message to its HTML fragment. Reads stdin when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		Example: `
researchforge render answer.md
echo "## Results" | researchforge render --engine commonmark
researchforge render --role user question.txt
	`,
		RunE: runRender,
	}

	renderCmd.Flags().String("role", string(message.Assistant),
		fmt.Sprintf("Message role, one of %v.", message.Roles))
	renderCmd.Flags().Bool("raw", false, "Escape the content instead of rendering markdown.")

	return renderCmd
}

func runRender(cmd *cobra.Command, args []string) error {
	roleFlag, _ := cmd.Flags().GetString("role")
	raw, _ := cmd.Flags().GetBool("raw")

	role, err := message.ParseRole(roleFlag)
	if err != nil {
		return err
	}

	var content []byte
	if len(args) == 1 {
		content, err = os.ReadFile(args[0])
	} else {
		content, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("error reading message: %v", err)
	}

	renderer, err := newRenderer()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(role, string(content), raw))
	return nil
}
