package main

import (
	"fmt"

	"github.com/promptcmd/promptcmd/config/loadbalancer"
)

// balanceScopeFlag and balanceLevelFlag adapt loadbalancer's enums to
// pflag.Value so they can be set from the command line as plain words
// instead of integers.
type balanceScopeFlag struct{ dst *loadbalancer.BalanceScope }

func (f *balanceScopeFlag) String() string {
	if f.dst == nil {
		return "global"
	}
	if *f.dst == loadbalancer.ScopeGroup {
		return "group"
	}
	return "global"
}

func (f *balanceScopeFlag) Set(s string) error {
	switch s {
	case "global":
		*f.dst = loadbalancer.ScopeGlobal
	case "group":
		*f.dst = loadbalancer.ScopeGroup
	default:
		return fmt.Errorf("invalid scope %q: want global or group", s)
	}
	return nil
}

func (f *balanceScopeFlag) Type() string { return "scope" }

type balanceLevelFlag struct{ dst *loadbalancer.BalanceLevel }

func (f *balanceLevelFlag) String() string {
	if f.dst == nil {
		return "model"
	}
	switch *f.dst {
	case loadbalancer.LevelProvider:
		return "provider"
	case loadbalancer.LevelVariant:
		return "variant"
	default:
		return "model"
	}
}

func (f *balanceLevelFlag) Set(s string) error {
	switch s {
	case "model":
		*f.dst = loadbalancer.LevelModel
	case "provider":
		*f.dst = loadbalancer.LevelProvider
	case "variant":
		*f.dst = loadbalancer.LevelVariant
	default:
		return fmt.Errorf("invalid level %q: want model, provider, or variant", s)
	}
	return nil
}

func (f *balanceLevelFlag) Type() string { return "level" }
