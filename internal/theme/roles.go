// Package theme maps an extracted palette onto terminal/theme roles and
// renders configuration templates from them.
package theme

import (
	"fmt"
	"slices"

	"github.com/jmylchreest/tincture/internal/colour"
)

// Role is a semantic colour name exposed to templates.
type Role string

const (
	RoleBackground Role = "background"
	RoleForeground Role = "foreground"
	RoleCursor     Role = "cursor"
)

// DefaultColour is assigned to every role a policy leaves unset.
const DefaultColour = "#ffffff"

// IndexedRole returns the role for ANSI colour slot i (color0..color15).
func IndexedRole(i int) Role {
	return Role(fmt.Sprintf("color%d", i))
}

// AllRoles returns every role in template order.
func AllRoles() []Role {
	roles := []Role{RoleBackground, RoleForeground, RoleCursor}
	for i := range 16 {
		roles = append(roles, IndexedRole(i))
	}
	return roles
}

// Policy decides how palette colours are spread over the roles.
type Policy string

const (
	// PolicyPalette fills every role from the palette and its extremes.
	PolicyPalette Policy = "palette"

	// PolicyReference sets only the background (from the darkest colour) and
	// leaves every other role at DefaultColour.
	PolicyReference Policy = "reference"
)

// ValidPolicies returns a list of valid policy names.
func ValidPolicies() []Policy {
	return []Policy{PolicyPalette, PolicyReference}
}

// ParsePolicy converts a string to a Policy.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(s)
	if slices.Contains(ValidPolicies(), p) {
		return p, nil
	}
	return "", fmt.Errorf("invalid policy: %s (valid: %v)", s, ValidPolicies())
}

// String implements pflag.Value.
func (p *Policy) String() string {
	return string(*p)
}

// Set implements pflag.Value.
func (p *Policy) Set(s string) error {
	policy, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = policy
	return nil
}

// Type implements pflag.Value.
func (p *Policy) Type() string {
	return "policy"
}

// Context maps role names to "#rrggbb" values. It is the data handed to templates.
type Context map[string]string

// Get returns the colour assigned to role.
func (c Context) Get(role Role) string {
	return c[string(role)]
}

// BuildContext assigns a hex colour to every role according to policy.
func BuildContext(p *colour.Palette, ext colour.Extremes, policy Policy) (Context, error) {
	ctx := make(Context, len(AllRoles()))
	for _, role := range AllRoles() {
		ctx[string(role)] = DefaultColour
	}

	darkest := ext.Darkest.Hex()
	lightest := ext.Lightest.Hex()

	switch policy {
	case PolicyReference:
		ctx[string(RoleBackground)] = darkest
		return ctx, nil
	case PolicyPalette:
	default:
		return nil, fmt.Errorf("invalid policy: %s (valid: %v)", policy, ValidPolicies())
	}

	ctx[string(RoleBackground)] = darkest
	ctx[string(RoleForeground)] = lightest
	ctx[string(RoleCursor)] = lightest
	for _, i := range []int{0, 8} {
		ctx[string(IndexedRole(i))] = darkest
	}
	for _, i := range []int{7, 15} {
		ctx[string(IndexedRole(i))] = lightest
	}

	// Remaining slots take the other palette colours in population order.
	var accents []string
	for _, e := range p.All() {
		if e.Cluster == ext.Darkest.Cluster || e.Cluster == ext.Lightest.Cluster {
			continue
		}
		accents = append(accents, e.Hex())
	}
	if len(accents) == 0 {
		accents = []string{lightest}
	}

	n := 0
	for _, i := range []int{1, 2, 3, 4, 5, 6, 9, 10, 11, 12, 13, 14} {
		ctx[string(IndexedRole(i))] = accents[n%len(accents)]
		n++
	}

	return ctx, nil
}
