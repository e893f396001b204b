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

// Location is the topological location of a point relative to a geometry.
// Interior, Boundary and Exterior are also the row and column indices of an
// IntersectionMatrix.
type Location int

const (
	// None is used for locations that have not been determined.
	None Location = iota - 1
	// Interior is the location of points in the interior of a geometry.
	Interior
	// Boundary is the location of points on the boundary of a geometry.
	Boundary
	// Exterior is the location of points outside of a geometry.
	Exterior
)

// Symbol returns the single-character representation of l.
func (l Location) Symbol() byte {
	switch l {
	case Exterior:
		return 'e'
	case Boundary:
		return 'b'
	case Interior:
		return 'i'
	case None:
		return '-'
	}
	panic(fmt.Sprintf("planar: unknown location value %d", int(l)))
}

func (l Location) String() string {
	switch l {
	case Exterior:
		return "Exterior"
	case Boundary:
		return "Boundary"
	case Interior:
		return "Interior"
	case None:
		return "None"
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

// Position indicates the position of a location relative to a graph
// component: on it, or to its left or right.
type Position int

const (
	// On is the position on a component.
	On Position = iota
	// Left is the position to the left of a directed component.
	Left
	// Right is the position to the right of a directed component.
	Right
)

// Opposite returns Left for Right and Right for Left. On is returned
// unchanged.
func (p Position) Opposite() Position {
	switch p {
	case Left:
		return Right
	case Right:
		return Left
	}
	return p
}

func (p Position) String() string {
	switch p {
	case On:
		return "On"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// Dimension is the dimension of an intersection in an IntersectionMatrix.
type Dimension int

// Dimension values. False marks an empty intersection.
const (
	DontCare Dimension = -3
	True     Dimension = -2
	False    Dimension = -1
	P        Dimension = 0
	L        Dimension = 1
	A        Dimension = 2
)

// Symbol returns the character used for d in an intersection matrix pattern.
func (d Dimension) Symbol() byte {
	switch d {
	case False:
		return 'F'
	case True:
		return 'T'
	case DontCare:
		return '*'
	case P:
		return '0'
	case L:
		return '1'
	case A:
		return '2'
	}
	panic(fmt.Sprintf("planar: unknown dimension value %d", int(d)))
}

// DimensionFromSymbol parses a pattern character.
func DimensionFromSymbol(c byte) (Dimension, error) {
	switch c {
	case 'F', 'f':
		return False, nil
	case 'T', 't':
		return True, nil
	case '*':
		return DontCare, nil
	case '0':
		return P, nil
	case '1':
		return L, nil
	case '2':
		return A, nil
	}
	return 0, fmt.Errorf("planar: unknown dimension symbol %q", c)
}
