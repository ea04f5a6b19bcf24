package main

import (
	"fmt"
	"os"
	"os/exec"
	"sort"

	"github.com/spf13/cobra"

	"github.com/promptcmd/promptcmd/config/providers"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit the promptcmd configuration file",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known providers, variants, and groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appcfg, err := loadAppConfig()
		if err != nil {
			return err
		}

		for _, kind := range providers.Order {
			section, ok := appcfg.Providers[kind]
			if !ok {
				continue
			}
			fmt.Printf("%s\n", kind)
			names := make([]string, 0, len(section.Named))
			for name := range section.Named {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  %s/%s\n", kind, name)
			}
		}

		if len(appcfg.Groups) > 0 {
			fmt.Println("groups")
			names := make([]string, 0, len(appcfg.Groups))
			for name := range appcfg.Groups {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
		}
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in $EDITOR",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}
		c := exec.CommandContext(cmd.Context(), editor, configPath)
		c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
		return c.Run()
	},
}

func init() {
	configCmd.AddCommand(configListCmd, configEditCmd)
	rootCmd.AddCommand(configCmd)
}
