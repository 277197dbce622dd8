package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/fireconv/pkg/fire"
)

// ResolveType infers a node's type from its attached components.
// Nodes without components are plain nodes; a non-empty component set with
// no recognized kind is TypeUnknown.
func (c *Context) ResolveType(node fire.Record) (TypeTag, error) {
	comps, err := c.Components(node)
	if err != nil {
		return TypeUnknown, err
	}
	return c.resolveKinds(node.Name(), componentKinds(comps)), nil
}

func (c *Context) resolveKinds(name string, kinds []string) TypeTag {
	if len(kinds) == 0 {
		return TypeGeneric
	}

	present := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		present[k] = true
	}

	for _, p := range typePriority {
		if present[p.kind] {
			c.Log.Debug("resolved node type",
				zap.String("node", name),
				zap.Strings("components", kinds),
				zap.Stringer("type", p.tag))
			return p.tag
		}
	}

	c.Log.Debug("unknown components",
		zap.String("node", name),
		zap.Strings("components", kinds))
	return TypeUnknown
}

func componentKinds(comps []fire.Record) []string {
	kinds := make([]string, 0, len(comps))
	for _, comp := range comps {
		kinds = append(kinds, comp.Kind())
	}
	return kinds
}
