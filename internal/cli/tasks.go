package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/caseforge/pkg/task"
)

// newTasksCmd creates the tasks command listing the registry.
func newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the registered tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Registered tasks"))
			for _, t := range task.All {
				fmt.Printf("  %s %s %s\n",
					StyleHighlight.Render(fmt.Sprintf("%-12s", t.Name)),
					StyleDim.Render(fmt.Sprintf("%3d cases", t.Cases)),
					t.Summary)
			}
			return nil
		},
	}
}
