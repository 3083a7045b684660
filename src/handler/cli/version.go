package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("repo-analyzer %s\n", h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) platformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List detectable platforms",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Detectable platforms (in precedence order):")
			fmt.Println("  - ios     : Xcode project/workspace or Podfile")
			fmt.Println("  - android : AndroidManifest.xml or Android Gradle plugin")
			fmt.Println("  - angular : angular.json or @angular packages in package.json")
			fmt.Println("  - java    : pom.xml or build.gradle")
			fmt.Println("  - unknown : no recognized markers")
		},
	}
}
