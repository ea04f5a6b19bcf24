package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/promptcmd/promptcmd/config"
	"github.com/promptcmd/promptcmd/config/builder"
	"github.com/promptcmd/promptcmd/config/loadbalancer"
	"github.com/promptcmd/promptcmd/config/resolver"
	"github.com/promptcmd/promptcmd/core"
	"github.com/promptcmd/promptcmd/dotprompt"
	"github.com/promptcmd/promptcmd/llms"
	"github.com/promptcmd/promptcmd/stats"
)

var catCmd = &cobra.Command{
	Use:   "cat <name>",
	Short: "Print a stored prompt's raw contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store := newStorage()
		_, data, err := store.Load(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored prompt names and their locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStorage()
		entries, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		names := make([]string, 0, len(entries))
		for name := range entries {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s\t%s\n", name, entries[name])
		}
		return nil
	},
}

var (
	runVars  map[string]string
	runModel string
	runGroup loadbalancer.BalanceScope
	runLevel loadbalancer.BalanceLevel
)

var runCmd = &cobra.Command{
	Use:   "run <name> [args...]",
	Short: "Render, resolve, load-balance, and build a prompt invocation",
	Long: `run renders the named prompt's template, resolves its provider
configuration, load-balances across a group's members if needed, builds
the BuilderContract, and dispatches it to the matching llms/<kind>
adapter to construct a client. Actually invoking that client is out of
scope, so run prints the contract and the constructed client's model
instead of calling it, then logs a stats.Record for the attempt.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		name := args[0]
		invocationID := uuid.New().String()

		store := newStorage()
		_, data, err := store.Load(ctx, name)
		if err != nil {
			return err
		}

		dp, err := dotprompt.Parse(name, bytes.NewReader(data))
		if err != nil {
			return err
		}

		if dp.NeedsStdin() {
			stdin, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("run: reading stdin: %w", err)
			}
			if runVars == nil {
				runVars = map[string]string{}
			}
			runVars["STDIN"] = string(stdin)
		}

		fm := dp.ToProperties()
		fmExtras := dp.ToExtras()

		var overrides *config.GlobalProperties
		if runModel != "" {
			overrides = &config.GlobalProperties{Model: config.Some(runModel, config.SourceInput(runModel))}
		}

		appcfg, err := loadAppConfig()
		if err != nil {
			return err
		}

		r := &resolver.Resolver{FMProperties: &fm, FMExtras: fmExtras, Overrides: overrides}
		resolved, err := r.Resolve(appcfg)
		if err != nil {
			return err
		}

		statsStore, err := newStatsStore(ctx)
		if err != nil {
			return err
		}
		defer statsStore.Close()

		leaf, info, err := selectMember(ctx, resolved, statsStore)
		if err != nil {
			return err
		}

		contract, err := builder.ToBuilderContract(leaf)
		if err != nil {
			return err
		}

		chat, err := llms.Build(contract)
		if err != nil {
			return err
		}

		logger.Info(ctx, "invocation built", "invocation_id", invocationID, "prompt", name, "provider", info.Provider, "model", info.Model)

		rendered := dp.Render(runVars)
		fmt.Printf("invocation: %s\nprovider: %s\nmodel: %s\n\n--- rendered prompt ---\n%s\n\n--- builder contract ---\n", invocationID, info.Provider, info.Model, rendered)
		fmt.Printf("kind: %s\nmodel: %s\ntemperature: %v\nstream: %v\nmax_tokens: %d\nsystem: %s\n",
			contract.Kind, contract.Model, contract.Temperature, contract.Stream, contract.MaxTokens, contract.System)
		fmt.Printf("client: %s ready\n", chat.ChatModelName())

		record := stats.Record{
			PromptName:       name,
			Provider:         info.Provider,
			Model:            info.Model,
			Success:          true,
			PromptTokens:     0,
			CompletionTokens: 0,
		}
		if v, ok := memberVariant(leaf); ok {
			record.Variant = v
		}
		if g, ok := resolved.(*resolver.Group); ok {
			record.Group = g.Name
		}
		if err := statsStore.Log(ctx, record); err != nil {
			return core.NewError("cmd.run", core.ErrProviderDown, "logging invocation", err)
		}
		return nil
	},
}

// selectMember resolves a leaf (Base/Variant) to build from: resolved
// itself if it is already a leaf, or the load balancer's pick if it is a
// Group (§4.4).
func selectMember(ctx context.Context, resolved resolver.ResolvedConfig, store stats.Store) (resolver.ResolvedConfig, resolver.ModelInfo, error) {
	switch c := resolved.(type) {
	case *resolver.Base:
		info, err := c.ModelInfo()
		return c, info, err
	case *resolver.Variant:
		info, err := c.ModelInfo()
		return c, info, err
	case *resolver.Group:
		lb := &loadbalancer.LoadBalancer{Stats: store}
		choice, err := lb.Choose(ctx, c, runGroup, runLevel)
		if err != nil {
			return nil, resolver.ModelInfo{}, err
		}
		return choice.Member.Member(), choice.ModelInfo, nil
	default:
		return nil, resolver.ModelInfo{}, core.NewError("cmd.run", core.ErrInvalidInput, "unrecognized resolved config", nil)
	}
}

func memberVariant(cfg resolver.ResolvedConfig) (string, bool) {
	v, ok := cfg.(*resolver.Variant)
	if !ok {
		return "", false
	}
	return v.Name, true
}

func init() {
	runCmd.Flags().StringToStringVar(&runVars, "var", nil, "template variable in k=v form, repeatable")
	runCmd.Flags().StringVar(&runModel, "model", "", "override the resolved name with an explicit provider[/model] or variant")
	runCmd.Flags().Var(&balanceScopeFlag{&runGroup}, "scope", "load balancer scope: global or group")
	runCmd.Flags().Var(&balanceLevelFlag{&runLevel}, "level", "load balancer level: model, provider, or variant")
	rootCmd.AddCommand(catCmd, listCmd, runCmd)
}
