// SPDX-License-Identifier: MIT

package electronic

import (
	"fmt"
	"strings"
	"sync"
)

// Kind tags a component with an entry of the pin catalog.
type Kind uint16

// Built-in kinds.
const (
	// Resistor has pins "1" (left) and "2" (right) at Deg0.
	Resistor Kind = iota
	// Source has pins "POSITIVE" (top) and "NEGATIVE" (bottom) at Deg0.
	Source
	// Ground has a single unnamed pin on top at Deg0.
	Ground
)

// Well-known pin names of the built-in kinds.
const (
	PinResistor1 = "1"
	PinResistor2 = "2"
	PinPositive  = "POSITIVE"
	PinNegative  = "NEGATIVE"
	PinGround    = ""
)

// PinSpec declares one pin of a kind: its name and its direction at Deg0.
type PinSpec struct {
	Name string
	Base Direction
}

type kindSpec struct {
	name string
	pins []PinSpec
}

var (
	catalogMu sync.RWMutex
	catalog   = []kindSpec{
		Resistor: {name: "resistor", pins: []PinSpec{{PinResistor1, Left}, {PinResistor2, Right}}},
		Source:   {name: "source", pins: []PinSpec{{PinPositive, Top}, {PinNegative, Bottom}}},
		Ground:   {name: "ground", pins: []PinSpec{{PinGround, Top}}},
	}
)

// DefineKind registers a new component kind and returns its tag.
//
// A kind needs a non-empty name not yet in the catalog (case-insensitive),
// 1..4 pins with unique names, and pairwise distinct base directions, since a
// pin projects into its own neighbour cell.
//
// Complexity: O(K + P) where K is the catalog size.
func DefineKind(name string, pins ...PinSpec) (Kind, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: empty name", ErrBadKind)
	}
	if len(pins) == 0 || len(pins) > NumDirections {
		return 0, fmt.Errorf("%w: %q declares %d pins", ErrBadKind, name, len(pins))
	}
	var used [NumDirections]bool
	names := make(map[string]struct{}, len(pins))
	for _, p := range pins {
		if p.Base >= NumDirections {
			return 0, fmt.Errorf("%w: %q pin %q has direction %v", ErrBadKind, name, p.Name, p.Base)
		}
		if used[p.Base] {
			return 0, fmt.Errorf("%w: %q has two pins facing %v", ErrBadKind, name, p.Base)
		}
		if _, dup := names[p.Name]; dup {
			return 0, fmt.Errorf("%w: %q repeats pin %q", ErrBadKind, name, p.Name)
		}
		used[p.Base] = true
		names[p.Name] = struct{}{}
	}

	catalogMu.Lock()
	defer catalogMu.Unlock()
	for _, spec := range catalog {
		if strings.EqualFold(spec.name, name) {
			return 0, fmt.Errorf("%w: %q already defined", ErrBadKind, name)
		}
	}
	catalog = append(catalog, kindSpec{name: strings.ToLower(name), pins: append([]PinSpec(nil), pins...)})

	return Kind(len(catalog) - 1), nil
}

// ParseKind resolves a kind by its catalog name, ignoring case.
func ParseKind(name string) (Kind, error) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	for i, spec := range catalog {
		if strings.EqualFold(spec.name, strings.TrimSpace(name)) {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// String returns the catalog name of k.
func (k Kind) String() string {
	spec, ok := k.spec()
	if !ok {
		return fmt.Sprintf("kind(%d)", uint16(k))
	}
	return spec.name
}

// Pins returns a copy of the pin table of k, or nil for an unknown kind.
func (k Kind) Pins() []PinSpec {
	spec, ok := k.spec()
	if !ok {
		return nil
	}
	return append([]PinSpec(nil), spec.pins...)
}

func (k Kind) spec() (kindSpec, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	if int(k) >= len(catalog) {
		return kindSpec{}, false
	}
	return catalog[k], true
}
