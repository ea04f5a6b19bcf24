package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptcmd/promptcmd/config/loadbalancer"
	"github.com/promptcmd/promptcmd/config/resolver"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Print the diagnostic view of a resolved provider/variant/group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appcfg, err := loadAppConfig()
		if err != nil {
			return err
		}
		resolved, err := resolveFor(ctx, appcfg, args[0], nil, nil)
		if err != nil {
			return err
		}
		fmt.Println(resolver.Display(resolved))
		return nil
	},
}

var resolveModelCmd = &cobra.Command{
	Use:   "resolve-model <name>",
	Short: "Print just provider/model for a resolved name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appcfg, err := loadAppConfig()
		if err != nil {
			return err
		}
		resolved, err := resolveFor(ctx, appcfg, args[0], nil, nil)
		if err != nil {
			return err
		}
		info, err := resolveModelInfo(ctx, resolved)
		if err != nil {
			return err
		}
		fmt.Printf("%s/%s\n", info.Provider, info.Model)
		return nil
	},
}

// resolveModelInfo returns the (provider, model) pair for any resolved
// config, load-balancing across a Group's members when necessary (§4.4).
func resolveModelInfo(ctx context.Context, resolved resolver.ResolvedConfig) (resolver.ModelInfo, error) {
	switch c := resolved.(type) {
	case *resolver.Base:
		return c.ModelInfo()
	case *resolver.Variant:
		return c.ModelInfo()
	case *resolver.Group:
		statsStore, err := newStatsStore(ctx)
		if err != nil {
			return resolver.ModelInfo{}, err
		}
		defer statsStore.Close()
		lb := &loadbalancer.LoadBalancer{Stats: statsStore}
		choice, err := lb.Choose(ctx, c, loadbalancer.ScopeGlobal, loadbalancer.LevelModel)
		if err != nil {
			return resolver.ModelInfo{}, err
		}
		return choice.ModelInfo, nil
	default:
		return resolver.ModelInfo{}, nil
	}
}

func init() {
	rootCmd.AddCommand(resolveCmd, resolveModelCmd)
}
