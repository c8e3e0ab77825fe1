// SPDX-License-Identifier: MIT

package scenario

// Decode targets for gohcl.

type hclFile struct {
	Settings *hclSettings `hcl:"settings,block"`
	Boards   []*hclBoard  `hcl:"board,block"`
	Systems  []*hclSystem `hcl:"system,block"`
}

type hclSettings struct {
	Epsilon  *float64 `hcl:"epsilon,optional"`
	LogLevel *string  `hcl:"log_level,optional"`
}

type hclBoard struct {
	Name       string          `hcl:"name,label"`
	Width      int             `hcl:"width"`
	Height     *int            `hcl:"height,optional"`
	Components []*hclComponent `hcl:"component,block"`
	Wires      []*hclWire      `hcl:"wire,block"`
}

type hclComponent struct {
	ID        string `hcl:"id,label"`
	Kind      string `hcl:"kind"`
	At        []int  `hcl:"at"`
	Rotations *int   `hcl:"rotations,optional"`
}

type hclWire struct {
	Points [][]int `hcl:"points"`
}

type hclSystem struct {
	Name      string             `hcl:"name,label"`
	Equations []string           `hcl:"equations"`
	Known     map[string]float64 `hcl:"known,optional"`
}
