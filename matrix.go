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

import (
	"fmt"
	"strings"
)

// IntersectionMatrix is a Dimensionally Extended Nine-Intersection Model
// (DE-9IM) matrix. Rows are indexed by the location in the first geometry
// and columns by the location in the second.
type IntersectionMatrix [3][3]Dimension

// NewIntersectionMatrix returns a matrix with every entry set to False.
func NewIntersectionMatrix() *IntersectionMatrix {
	m := new(IntersectionMatrix)
	m.SetAll(False)
	return m
}

// ParseIntersectionMatrix parses a nine-character dimension string such
// as "212101212".
func ParseIntersectionMatrix(s string) (*IntersectionMatrix, error) {
	if len(s) != 9 {
		return nil, fmt.Errorf("planar: intersection matrix %q must have 9 symbols", s)
	}
	m := new(IntersectionMatrix)
	for i := 0; i < 9; i++ {
		d, err := DimensionFromSymbol(s[i])
		if err != nil {
			return nil, err
		}
		m[i/3][i%3] = d
	}
	return m, nil
}

// Get returns the dimension of the intersection of the row location of the
// first geometry with the column location of the second.
func (m *IntersectionMatrix) Get(row, col Location) Dimension {
	return m[row][col]
}

// Set sets an entry.
func (m *IntersectionMatrix) Set(row, col Location, d Dimension) {
	m[row][col] = d
}

// SetAll sets every entry to d.
func (m *IntersectionMatrix) SetAll(d Dimension) {
	for i := range m {
		for j := range m[i] {
			m[i][j] = d
		}
	}
}

// SetAtLeast raises an entry to d. Entries are never lowered.
func (m *IntersectionMatrix) SetAtLeast(row, col Location, d Dimension) {
	if m[row][col] < d {
		m[row][col] = d
	}
}

// SetAtLeastIfValid is SetAtLeast, but does nothing if either location is
// None.
func (m *IntersectionMatrix) SetAtLeastIfValid(row, col Location, d Dimension) {
	if row >= 0 && col >= 0 {
		m.SetAtLeast(row, col, d)
	}
}

// SetAtLeastPattern raises every entry to the dimension in the
// corresponding position of pattern; '*' leaves an entry alone.
func (m *IntersectionMatrix) SetAtLeastPattern(pattern string) error {
	if len(pattern) != 9 {
		return fmt.Errorf("planar: pattern %q must have 9 symbols", pattern)
	}
	for i := 0; i < 9; i++ {
		if pattern[i] == '*' {
			continue
		}
		d, err := DimensionFromSymbol(pattern[i])
		if err != nil {
			return err
		}
		m.SetAtLeast(Location(i/3), Location(i%3), d)
	}
	return nil
}

// Matches returns whether m satisfies pattern, a nine-character string
// over the symbols T, F, *, 0, 1 and 2.
func (m *IntersectionMatrix) Matches(pattern string) (bool, error) {
	if len(pattern) != 9 {
		return false, fmt.Errorf("planar: pattern %q must have 9 symbols", pattern)
	}
	for i := 0; i < 9; i++ {
		ok, err := matchesSymbol(m[i/3][i%3], pattern[i])
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func matchesSymbol(actual Dimension, symbol byte) (bool, error) {
	required, err := DimensionFromSymbol(symbol)
	if err != nil {
		return false, err
	}
	switch required {
	case DontCare:
		return true, nil
	case True:
		return isTrue(actual), nil
	}
	return actual == required, nil
}

func isTrue(d Dimension) bool {
	return d >= 0 || d == True
}

// Transpose returns the matrix with rows and columns exchanged.
func (m *IntersectionMatrix) Transpose() *IntersectionMatrix {
	t := new(IntersectionMatrix)
	for i := range m {
		for j := range m[i] {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// IsDisjoint returns whether the geometries have no point in common.
func (m *IntersectionMatrix) IsDisjoint() bool {
	return m[Interior][Interior] == False &&
		m[Interior][Boundary] == False &&
		m[Boundary][Interior] == False &&
		m[Boundary][Boundary] == False
}

// IsIntersects returns whether the geometries have at least one point in
// common.
func (m *IntersectionMatrix) IsIntersects() bool {
	return !m.IsDisjoint()
}

// IsTouches returns whether geometries of dimensions dimA and dimB touch:
// they intersect but their interiors do not.
func (m *IntersectionMatrix) IsTouches(dimA, dimB Dimension) bool {
	if dimA > dimB {
		return m.Transpose().IsTouches(dimB, dimA)
	}
	if (dimA == A && dimB == A) || (dimA == L && dimB == L) || (dimA == L && dimB == A) ||
		(dimA == P && dimB == A) || (dimA == P && dimB == L) {
		return m[Interior][Interior] == False &&
			(isTrue(m[Interior][Boundary]) || isTrue(m[Boundary][Interior]) || isTrue(m[Boundary][Boundary]))
	}
	return false
}

// IsContains returns whether the first geometry contains the second.
func (m *IntersectionMatrix) IsContains() bool {
	return isTrue(m[Interior][Interior]) && m[Exterior][Interior] == False && m[Exterior][Boundary] == False
}

// IsWithin returns whether the first geometry is within the second.
func (m *IntersectionMatrix) IsWithin() bool {
	return isTrue(m[Interior][Interior]) && m[Interior][Exterior] == False && m[Boundary][Exterior] == False
}

// IsEquals returns whether geometries of dimensions dimA and dimB are
// topologically equal.
func (m *IntersectionMatrix) IsEquals(dimA, dimB Dimension) bool {
	if dimA != dimB {
		return false
	}
	return isTrue(m[Interior][Interior]) &&
		m[Interior][Exterior] == False && m[Boundary][Exterior] == False &&
		m[Exterior][Interior] == False && m[Exterior][Boundary] == False
}

func (m *IntersectionMatrix) String() string {
	var b strings.Builder
	for i := range m {
		for j := range m[i] {
			b.WriteByte(m[i][j].Symbol())
		}
	}
	return b.String()
}
