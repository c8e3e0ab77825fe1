// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/circuitry/circuit"
	"github.com/katalvlaran/circuitry/electronic"
	"github.com/katalvlaran/circuitry/equation"
	"github.com/katalvlaran/circuitry/internal/logging"
)

// Scenario is a loaded scenario file.
type Scenario struct {
	Path     string
	Settings Settings
	Boards   []*Board
	Systems  []*System
}

// Settings holds the optional settings block. A nil Epsilon and an empty
// LogLevel mean unset.
type Settings struct {
	Epsilon  *float64
	LogLevel string
}

// Board is one built board. Err collects every placement or wiring problem;
// Circuit holds whatever could be placed.
type Board struct {
	Name    string
	Circuit *circuit.Circuit
	Err     error
}

// System is one built equation system. Equations is nil when Err is set.
type System struct {
	Name      string
	Equations *equation.SimultaneousEquations
	Known     map[string]float64
	Err       error
}

// Err joins the errors of every board and system.
func (s *Scenario) Err() error {
	var errs []error
	for _, b := range s.Boards {
		if b.Err != nil {
			errs = append(errs, fmt.Errorf("board %q: %w", b.Name, b.Err))
		}
	}
	for _, sys := range s.Systems {
		if sys.Err != nil {
			errs = append(errs, fmt.Errorf("system %q: %w", sys.Name, sys.Err))
		}
	}
	return errors.Join(errs...)
}

// Option configures loading.
type Option func(*loader)

type loader struct {
	vars   map[string]string
	eps    *float64
	logger *slog.Logger
}

// WithVars supplies the values behind var.<name>.
func WithVars(vars map[string]string) Option {
	return func(l *loader) { l.vars = vars }
}

// WithEpsilon overrides the settings block's epsilon. Panics if eps is
// negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(fmt.Sprintf("scenario: WithEpsilon(%v): eps must be finite, non-negative", eps))
	}
	return func(l *loader) { l.eps = &eps }
}

// WithLogger passes l down to every built circuit and system.
func WithLogger(l *slog.Logger) Option {
	return func(ld *loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// Load parses and builds the scenario file at path.
//
// Errors:
//   - ErrSyntax for HCL parse or decode diagnostics, including references to
//     undefined variables.
//   - ErrBadSettings for a negative or non-finite epsilon.
func Load(path string, opts ...Option) (*Scenario, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, diags)
	}
	return build(path, f.Body, opts)
}

// Parse is Load for in-memory source; filename is used in diagnostics.
func Parse(src []byte, filename string, opts ...Option) (*Scenario, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, diags)
	}
	return build(filename, f.Body, opts)
}

// ParseVars turns "name=value" pairs into a variable map.
func ParseVars(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || !hclsyntax.ValidIdentifier(name) {
			return nil, fmt.Errorf("%w: %q", ErrBadVar, p)
		}
		vars[name] = strings.TrimSpace(value)
	}
	return vars, nil
}

func build(path string, body hcl.Body, opts []Option) (*Scenario, error) {
	l := &loader{logger: logging.Discard()}
	for _, opt := range opts {
		opt(l)
	}
	ctx, err := evalContext(l.vars)
	if err != nil {
		return nil, err
	}

	var root hclFile
	if diags := gohcl.DecodeBody(body, ctx, &root); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, diags)
	}

	sc := &Scenario{Path: path}
	if s := root.Settings; s != nil {
		if s.Epsilon != nil {
			if e := *s.Epsilon; math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
				return nil, fmt.Errorf("%w: epsilon=%v", ErrBadSettings, e)
			}
			sc.Settings.Epsilon = s.Epsilon
		}
		if s.LogLevel != nil {
			sc.Settings.LogLevel = *s.LogLevel
		}
	}
	eps := equationEpsilon(l, sc.Settings)

	for _, b := range root.Boards {
		sc.Boards = append(sc.Boards, l.board(b))
	}
	for _, s := range root.Systems {
		sc.Systems = append(sc.Systems, l.system(s, eps))
	}
	l.logger.Debug("scenario loaded", "path", path, "boards", len(sc.Boards), "systems", len(sc.Systems))
	return sc, nil
}

func equationEpsilon(l *loader, s Settings) []equation.Option {
	switch {
	case l.eps != nil:
		return []equation.Option{equation.WithEpsilon(*l.eps)}
	case s.Epsilon != nil:
		return []equation.Option{equation.WithEpsilon(*s.Epsilon)}
	default:
		return nil
	}
}

// evalContext exposes vars as the object var.
func evalContext(vars map[string]string) (*hcl.EvalContext, error) {
	obj := make(map[string]cty.Value, len(vars))
	for name, raw := range vars {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			obj[name] = cty.StringVal(raw)
			continue
		}
		v, err := gocty.ToCtyValue(f, cty.Number)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBadVar, name, err)
		}
		obj[name] = v
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": cty.ObjectVal(obj)},
	}, nil
}

func (l *loader) board(b *hclBoard) *Board {
	out := &Board{Name: b.Name}
	opts := []circuit.Option{circuit.WithLogger(l.logger.With("board", b.Name))}
	if b.Height != nil {
		if *b.Height <= 0 {
			out.Err = fmt.Errorf("%w: height=%d", circuit.ErrBadDimensions, *b.Height)
			return out
		}
		opts = append(opts, circuit.WithHeight(*b.Height))
	}
	c, err := circuit.New(b.Width, opts...)
	if err != nil {
		out.Err = err
		return out
	}
	out.Circuit = c

	var errs []error
	for _, comp := range b.Components {
		if err := l.component(c, comp); err != nil {
			errs = append(errs, fmt.Errorf("component %q: %w", comp.ID, err))
		}
	}
	for i, w := range b.Wires {
		pts, err := coordinates(w.Points)
		if err == nil {
			err = c.AddWire(pts...)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("wire %d: %w", i+1, err))
		}
	}
	out.Err = errors.Join(errs...)
	return out
}

func (l *loader) component(c *circuit.Circuit, comp *hclComponent) error {
	if comp.ID == "" {
		return fmt.Errorf("%w: empty id", ErrBadComponent)
	}
	kind, err := electronic.ParseKind(comp.Kind)
	if err != nil {
		return err
	}
	at, err := coordinate(comp.At)
	if err != nil {
		return err
	}
	turns := 0
	if comp.Rotations != nil {
		turns = ((*comp.Rotations % electronic.NumDirections) + electronic.NumDirections) % electronic.NumDirections
	}
	e, err := electronic.New(kind,
		electronic.WithID(comp.ID),
		electronic.WithCoordinate(at),
		electronic.WithOrientation(electronic.Orientation(turns)),
	)
	if err != nil {
		return err
	}
	return c.AppendElectronics(e)
}

func (l *loader) system(s *hclSystem, eps []equation.Option) *System {
	out := &System{Name: s.Name, Known: s.Known}
	eqs := make([]*equation.Equation, 0, len(s.Equations))
	for i, text := range s.Equations {
		eq, err := equation.Parse(text)
		if err != nil {
			out.Err = fmt.Errorf("equation %d: %w", i+1, err)
			return out
		}
		eqs = append(eqs, eq)
	}
	opts := append([]equation.Option{equation.WithLogger(l.logger.With("system", s.Name))}, eps...)
	se, err := equation.NewSimultaneous(eqs, opts...)
	if err != nil {
		out.Err = err
		return out
	}
	out.Equations = se
	return out
}

func coordinate(v []int) (electronic.Coordinate, error) {
	if len(v) != 2 {
		return electronic.Coordinate{}, fmt.Errorf("%w: got %v", ErrBadCoordinate, v)
	}
	return electronic.Pt(v[0], v[1]), nil
}

func coordinates(vs [][]int) ([]electronic.Coordinate, error) {
	out := make([]electronic.Coordinate, len(vs))
	for i, v := range vs {
		c, err := coordinate(v)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i+1, err)
		}
		out[i] = c
	}
	return out, nil
}
