// Package memory holds the session directory: groups mapped to the members added to them.
// A Directory lives for one session and is owned by it, so it carries no locking.
package memory

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/sandevgo/roster/internal/core"
)

type Directory struct {
	groups map[string][]string
}

func NewDirectory() *Directory {
	return &Directory{
		groups: make(map[string][]string),
	}
}

// Add appends member to group, creating the group on first use. Duplicates are kept.
func (d *Directory) Add(group, member string) {
	d.groups[group] = append(d.groups[group], member)
}

// List returns the members of group in insertion order.
func (d *Directory) List(group string) ([]string, error) {
	members, ok := d.groups[group]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrGroupNotFound, group)
	}
	return slices.Clone(members), nil
}

// ListAll returns every group in lexicographic order, each with its members sorted.
func (d *Directory) ListAll() []core.GroupListing {
	names := lo.Keys(d.groups)
	slices.Sort(names)

	return lo.Map(names, func(name string, _ int) core.GroupListing {
		members := slices.Clone(d.groups[name])
		slices.Sort(members)
		return core.GroupListing{Group: name, Members: members}
	})
}
