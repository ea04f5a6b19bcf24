package resolver

import "github.com/promptcmd/promptcmd/config"

// resolveGroup attempts to resolve nameProp as a named [groups.<name>] table
// (§4.3 Group). Each member name is first tried as a Base, then as a
// Variant; a member that is itself a group is rejected per I5 (group
// indexing is forbidden — groups may not nest).
func (r *Resolver) resolveGroup(appconfig *config.AppConfig, nameProp config.P[string]) (*Group, error) {
	groupName := nameProp.Value
	groupConfig, ok := appconfig.Groups[groupName]
	if !ok {
		return nil, notFound(groupName)
	}

	members := make([]GroupMember, 0, len(groupConfig.Providers))
	for _, ref := range groupConfig.Providers {
		memberNameProp := config.New(ref.Name, config.SourceGroup(groupName, ref.Name))

		if base, err := r.resolveBase(appconfig, memberNameProp); err == nil {
			members = append(members, GroupMember{Base: base, Weight: weightOrOne(ref.Weight)})
			continue
		} else if !IsNotFound(err) {
			return nil, groupMemberError(groupName, err)
		}

		variant, err := r.resolveVariant(appconfig, memberNameProp)
		if err != nil {
			if IsNotFound(err) {
				return nil, groupMemberNotFound(groupName, ref.Name)
			}
			return nil, groupMemberError(groupName, err)
		}
		members = append(members, GroupMember{Variant: variant, Weight: weightOrOne(ref.Weight)})
	}

	return &Group{Name: groupName, Members: members}, nil
}

func weightOrOne(w uint32) uint32 {
	if w == 0 {
		return 1
	}
	return w
}
