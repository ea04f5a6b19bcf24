package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable <name>",
	Short: "Install a shortcut for a stored prompt (symlink/hardlink to this binary)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := newInstaller()
		if err != nil {
			return err
		}
		path, err := inst.Install(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <name>",
	Short: "Remove a prompt shortcut",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := newInstaller()
		if err != nil {
			return err
		}
		path, err := inst.Uninstall(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enableCmd, disableCmd)
}
