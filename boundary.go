/*
Copyright © 2019 the planar authors.
This file is part of planar.

planar is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

planar is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with planar.  If not, see <http://www.gnu.org/licenses/>.
*/

package planar

import "fmt"

// BoundaryNodeRule decides whether a point shared by the endpoints of
// boundaryCount linear components lies on the boundary of their union.
type BoundaryNodeRule interface {
	IsInBoundary(boundaryCount int) bool
}

type mod2Rule struct{}

func (mod2Rule) IsInBoundary(n int) bool { return n%2 == 1 }

type endPointRule struct{}

func (endPointRule) IsInBoundary(n int) bool { return n > 0 }

type multiValentEndPointRule struct{}

func (multiValentEndPointRule) IsInBoundary(n int) bool { return n > 1 }

type monoValentEndPointRule struct{}

func (monoValentEndPointRule) IsInBoundary(n int) bool { return n == 1 }

var (
	// Mod2 is the OGC SFS rule: an endpoint is on the boundary iff it is
	// shared by an odd number of components.
	Mod2 BoundaryNodeRule = mod2Rule{}
	// EndPoint puts every endpoint on the boundary.
	EndPoint BoundaryNodeRule = endPointRule{}
	// MultiValentEndPoint puts endpoints shared by more than one component
	// on the boundary.
	MultiValentEndPoint BoundaryNodeRule = multiValentEndPointRule{}
	// MonoValentEndPoint puts endpoints belonging to exactly one component
	// on the boundary.
	MonoValentEndPoint BoundaryNodeRule = monoValentEndPointRule{}
)

// BoundaryNodeRuleByName returns the rule with the given configuration name:
// "mod2", "endpoint", "multivalent" or "monovalent".
func BoundaryNodeRuleByName(name string) (BoundaryNodeRule, error) {
	switch name {
	case "", "mod2":
		return Mod2, nil
	case "endpoint":
		return EndPoint, nil
	case "multivalent":
		return MultiValentEndPoint, nil
	case "monovalent":
		return MonoValentEndPoint, nil
	}
	return nil, fmt.Errorf("planar: unknown boundary node rule %q", name)
}

// BoundaryLocation returns Boundary if rule places a point shared by
// boundaryCount endpoints on the boundary and Interior otherwise.
func BoundaryLocation(rule BoundaryNodeRule, boundaryCount int) Location {
	if rule == nil {
		rule = Mod2
	}
	if rule.IsInBoundary(boundaryCount) {
		return Boundary
	}
	return Interior
}
