package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/gable/pkg/building"
	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms Gable Lisp source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: rollup-door -> rollup_door
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpBuilding wraps the draft Building so the (building ...) form prints
// something readable when echoed by the interpreter.
type sexpBuilding struct {
	bld *building.Building
}

func (s *sexpBuilding) SexpString(ps *zygo.PrintState) string {
	d := s.bld.Dimensions
	return fmt.Sprintf("(building %gx%gx%g :pitch %g)", d.Width, d.Length, d.Height, d.RoofPitch)
}
func (s *sexpBuilding) Type() *zygo.RegisteredType { return nil }

// sexpFeature wraps a wall feature placed by one of the door/window forms.
type sexpFeature struct {
	feature building.WallFeature
}

func (s *sexpFeature) SexpString(ps *zygo.PrintState) string {
	f := s.feature
	return fmt.Sprintf("(%s %s %gx%g)", f.Kind, f.Position.Wall, f.Width, f.Height)
}
func (s *sexpFeature) Type() *zygo.RegisteredType { return nil }

// sexpSkylight wraps a roof skylight.
type sexpSkylight struct {
	skylight building.Skylight
}

func (s *sexpSkylight) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(skylight %gx%g)", s.skylight.Width, s.skylight.Length)
}
func (s *sexpSkylight) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value; treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_front) and plain strings ("front").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toWall converts a keyword or string to a building.WallPosition.
func toWall(s zygo.Sexp) (building.WallPosition, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected wall keyword (:front, :back, :left, :right): %w", err)
	}
	return building.ParseWall(name)
}

// toAlignment converts a keyword or string to a building.Alignment.
func toAlignment(s zygo.Sexp) (building.Alignment, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected alignment keyword (:left, :center, :right): %w", err)
	}
	return building.ParseAlignment(name)
}

// ---------------------------------------------------------------------------
// Feature ID generation
// ---------------------------------------------------------------------------

// featureID mints the ID for the n-th feature declared by an evaluation.
// SHA1-based UUIDs are deterministic, so re-evaluating the same source
// yields the same IDs; the app relies on this when it memoizes geometry
// by building fingerprint.
func featureID(kind building.FeatureKind, seq int) string {
	name := fmt.Sprintf("gable/%s/%d", kind, seq)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// buildState accumulates the Building declared by a single evaluation.
// Each Evaluate call gets a fresh instance, so feature IDs restart from
// one and never leak between runs.
type buildState struct {
	bld *building.Building
	seq int
}

// registerBuiltins installs all Gable DSL builtins into a zygomys environment.
// The builtins populate st during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, st *buildState) {

	// -----------------------------------------------------------------------
	// (building :width 40 :length 60 :height 14 :pitch 4)
	// -----------------------------------------------------------------------
	env.AddFunction("building", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if st.bld != nil {
			return zygo.SexpNull, fmt.Errorf("building: already declared; a design holds exactly one building")
		}
		pa := parseArgs(args)
		dims := building.Dimensions{}

		if v, ok := pa.kw["width"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("building: width: %w", err)
			}
			dims.Width = f
		}
		if v, ok := pa.kw["length"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("building: length: %w", err)
			}
			dims.Length = f
		}
		if v, ok := pa.kw["height"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("building: height: %w", err)
			}
			dims.Height = f
		}
		if v, ok := pa.kw["pitch"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("building: pitch: %w", err)
			}
			dims.RoofPitch = f
		}

		st.bld = building.New(dims)
		return &sexpBuilding{bld: st.bld}, nil
	})

	// -----------------------------------------------------------------------
	// (colors :walls "#A8B2B8" :roof "#4C5A64")
	// -----------------------------------------------------------------------
	env.AddFunction("colors", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if st.bld == nil {
			return zygo.SexpNull, fmt.Errorf("colors: no building declared; call (building ...) first")
		}
		pa := parseArgs(args)

		if v, ok := pa.kw["walls"]; ok {
			s, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("colors: walls: %w", err)
			}
			st.bld.Color = s
		}
		if v, ok := pa.kw["roof"]; ok {
			s, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("colors: roof: %w", err)
			}
			st.bld.RoofColor = s
		}

		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (door        :wall :front :width 6  :height 8 :align :center)
	// (window      :wall :left  :width 4  :height 3 :align :left :x 8 :y 5)
	// (rollup-door :wall :front :width 12 :height 12)
	// (walk-door   :wall :front :width 3  :height 7 :align :right :x 4)
	//
	// Note: rollup-door and walk-door are registered under underscore names
	// because zygomys does not support hyphens in identifiers. The
	// preprocessor converts the kebab form in the source.
	// -----------------------------------------------------------------------
	env.AddFunction("door", featureBuiltin(st, building.FeatureDoor))
	env.AddFunction("window", featureBuiltin(st, building.FeatureWindow))
	env.AddFunction("rollup_door", featureBuiltin(st, building.FeatureRollupDoor))
	env.AddFunction("walk_door", featureBuiltin(st, building.FeatureWalkDoor))

	// -----------------------------------------------------------------------
	// (skylight :width 4 :length 6 :x -6 :y 10)
	//
	// A negative :x puts the skylight on the left roof panel, zero or
	// positive on the right. :y runs along the ridge.
	// -----------------------------------------------------------------------
	env.AddFunction("skylight", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if st.bld == nil {
			return zygo.SexpNull, fmt.Errorf("skylight: no building declared; call (building ...) first")
		}
		pa := parseArgs(args)
		sk := building.Skylight{}

		if v, ok := pa.kw["width"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("skylight: width: %w", err)
			}
			sk.Width = f
		}
		if v, ok := pa.kw["length"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("skylight: length: %w", err)
			}
			sk.Length = f
		}
		if v, ok := pa.kw["x"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("skylight: x: %w", err)
			}
			sk.XOffset = f
		}
		if v, ok := pa.kw["y"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("skylight: y: %w", err)
			}
			sk.YOffset = f
		}

		st.bld.AddSkylight(sk)
		return &sexpSkylight{skylight: sk}, nil
	})
}

// featureBuiltin returns the handler shared by the four wall feature forms.
// They take identical keywords and differ only in the feature kind.
//
// Defaults: :wall :front, :align :center, :x 0, :y 0. The ID is minted
// deterministically unless :id overrides it.
func featureBuiltin(st *buildState, kind building.FeatureKind) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if st.bld == nil {
			return zygo.SexpNull, fmt.Errorf("%s: no building declared; call (building ...) first", kind)
		}
		pa := parseArgs(args)

		st.seq++
		f := building.WallFeature{
			ID:   featureID(kind, st.seq),
			Kind: kind,
			Position: building.FeaturePosition{
				Wall:  building.WallFront,
				Align: building.AlignCenter,
			},
		}

		if v, ok := pa.kw["id"]; ok {
			s, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: id: %w", kind, err)
			}
			f.ID = s
		}
		if v, ok := pa.kw["wall"]; ok {
			w, err := toWall(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: wall: %w", kind, err)
			}
			f.Position.Wall = w
		}
		if v, ok := pa.kw["width"]; ok {
			fl, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: width: %w", kind, err)
			}
			f.Width = fl
		}
		if v, ok := pa.kw["height"]; ok {
			fl, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: height: %w", kind, err)
			}
			f.Height = fl
		}
		if v, ok := pa.kw["align"]; ok {
			a, err := toAlignment(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: align: %w", kind, err)
			}
			f.Position.Align = a
		}
		if v, ok := pa.kw["x"]; ok {
			fl, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: x: %w", kind, err)
			}
			f.Position.XOffset = fl
		}
		if v, ok := pa.kw["y"]; ok {
			fl, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: y: %w", kind, err)
			}
			f.Position.YOffset = fl
		}

		st.bld.AddFeature(f)
		return &sexpFeature{feature: f}, nil
	}
}
