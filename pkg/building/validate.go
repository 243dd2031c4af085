package building

import (
	"fmt"
	"math"
)

// ValidationSeverity indicates whether a validation finding blocks layout
// or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks layout
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding. Ref names the
// offending part of the building ("dimensions", a feature ID, or
// "skylight[i]"); it is empty for building-level findings.
type ValidationError struct {
	Ref      string
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Ref, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Ref     string
	Message string
}

// ValidationResult bundles errors (blocking) and warnings (advisory).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether the building may be laid out (no blocking errors).
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate runs every check against the building and returns the combined
// result. This is the fail-fast boundary: the pure layout functions in
// pkg/geometry assume a building that passed here and never re-validate.
// A building that only produces warnings still lays out; the placements
// are computed exactly as specified, never clamped.
func Validate(b *Building) ValidationResult {
	var result ValidationResult

	errs := validateDimensions(b)
	errs = append(errs, validateFeatures(b)...)
	errs = append(errs, validateSkylights(b)...)

	for _, e := range errs {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Ref:     e.Ref,
				Message: e.Message,
			})
		} else {
			result.Errors = append(result.Errors, e)
		}
	}

	return result
}

// finite reports whether v is a usable measurement (not NaN or ±Inf).
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validateDimensions checks the core invariant: width, length and height
// strictly positive, pitch non-negative, everything finite.
func validateDimensions(b *Building) []ValidationError {
	var errs []ValidationError
	d := b.Dimensions

	check := func(name string, v float64) {
		if !finite(v) {
			errs = append(errs, ValidationError{
				Ref:      "dimensions",
				Message:  fmt.Sprintf("%s is not a finite number", name),
				Severity: SeverityError,
			})
			return
		}
		if v <= 0 {
			errs = append(errs, ValidationError{
				Ref:      "dimensions",
				Message:  fmt.Sprintf("%s must be positive, got %v", name, v),
				Severity: SeverityError,
			})
		}
	}

	check("width", d.Width)
	check("length", d.Length)
	check("height", d.Height)

	switch {
	case !finite(d.RoofPitch):
		errs = append(errs, ValidationError{
			Ref:      "dimensions",
			Message:  "roof pitch is not a finite number",
			Severity: SeverityError,
		})
	case d.RoofPitch < 0:
		errs = append(errs, ValidationError{
			Ref:      "dimensions",
			Message:  fmt.Sprintf("roof pitch must be non-negative, got %v", d.RoofPitch),
			Severity: SeverityError,
		})
	}

	return errs
}

// wallWidth returns the width of the given wall: gable walls span the
// building width, eave walls span the building length.
func (d Dimensions) wallWidth(p WallPosition) float64 {
	if p == WallLeft || p == WallRight {
		return d.Length
	}
	return d.Width
}

// validateFeatures checks every wall feature: identity, enum values,
// sizes against the wall they sit on, and (as warnings) whether the
// resolved extent stays within the wall bounds.
func validateFeatures(b *Building) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool)
	for i, f := range b.Features {
		ref := f.ID
		if ref == "" {
			ref = fmt.Sprintf("feature[%d]", i)
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  "feature has no id",
				Severity: SeverityError,
			})
		} else if seen[ref] {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  "duplicate feature id",
				Severity: SeverityError,
			})
		}
		seen[ref] = true

		if f.Position.Wall < WallFront || f.Position.Wall > WallRight {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  fmt.Sprintf("unknown wall position %d", int(f.Position.Wall)),
				Severity: SeverityError,
			})
			continue
		}
		if f.Position.Align < AlignLeft || f.Position.Align > AlignRight {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  fmt.Sprintf("unknown alignment %d", int(f.Position.Align)),
				Severity: SeverityError,
			})
			continue
		}
		if f.Kind < FeatureDoor || f.Kind > FeatureWalkDoor {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  fmt.Sprintf("unknown feature kind %d", int(f.Kind)),
				Severity: SeverityError,
			})
			continue
		}

		if !finite(f.Width) || !finite(f.Height) ||
			!finite(f.Position.XOffset) || !finite(f.Position.YOffset) {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  "feature has a non-finite measurement",
				Severity: SeverityError,
			})
			continue
		}
		if f.Width <= 0 || f.Height <= 0 {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  fmt.Sprintf("feature size must be positive, got %vx%v", f.Width, f.Height),
				Severity: SeverityError,
			})
			continue
		}

		// Hard invariants from the data model: a feature may not be wider
		// than its wall nor taller than the eave.
		ww := b.Dimensions.wallWidth(f.Position.Wall)
		if f.Width > ww {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  fmt.Sprintf("feature width %v exceeds wall width %v", f.Width, ww),
				Severity: SeverityError,
			})
		}
		if f.Height > b.Dimensions.Height {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  fmt.Sprintf("feature height %v exceeds eave height %v", f.Height, b.Dimensions.Height),
				Severity: SeverityError,
			})
		}

		// Advisory: the resolved extent should stay within the wall. The
		// placement resolver never clamps, so an offset that pushes the
		// feature past an edge renders exactly where asked.
		center := lateralCenter(f, ww)
		if over := math.Abs(center) + f.Width/2 - ww/2; over > 1e-9 {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  fmt.Sprintf("feature extends %.3g past the %s wall edge", over, f.Position.Wall),
				Severity: SeverityWarning,
			})
		}
		if f.Position.YOffset < 0 {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  "feature bottom sits below ground",
				Severity: SeverityWarning,
			})
		}
		if top := f.Position.YOffset + f.Height; top > b.Dimensions.Height {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  fmt.Sprintf("feature top %v rises above the eave line %v", top, b.Dimensions.Height),
				Severity: SeverityWarning,
			})
		}
	}

	return errs
}

// lateralCenter computes the feature's center offset from the wall
// centerline, in the wall's own coordinates. Mirrors the placement
// resolver's alignment arithmetic without any world-axis mapping.
func lateralCenter(f WallFeature, wallWidth float64) float64 {
	hw := f.Width / 2
	switch f.Position.Align {
	case AlignLeft:
		return -wallWidth/2 + hw + f.Position.XOffset
	case AlignRight:
		return wallWidth/2 - hw - f.Position.XOffset
	default:
		return f.Position.XOffset
	}
}

// validateSkylights checks skylight sizes and, as warnings, whether each
// skylight fits the panel its sign-selected offset assigns it to. The
// panel assignment itself is a strict sign test on XOffset; fit problems
// are advisory so the layout still shows what was asked for.
func validateSkylights(b *Building) []ValidationError {
	var errs []ValidationError

	// Sloped eave-to-ridge run of one panel. Kept in step with the
	// solver in pkg/geometry; duplicated here so the data layer does not
	// depend on the layout layer.
	halfW := b.Dimensions.Width / 2
	panelLength := math.Hypot(halfW, halfW*b.Dimensions.RoofPitch/12)

	for i, s := range b.Skylights {
		ref := fmt.Sprintf("skylight[%d]", i)

		if !finite(s.Width) || !finite(s.Length) || !finite(s.XOffset) || !finite(s.YOffset) {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  "skylight has a non-finite measurement",
				Severity: SeverityError,
			})
			continue
		}
		if s.Width <= 0 || s.Length <= 0 {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  fmt.Sprintf("skylight size must be positive, got %vx%v", s.Width, s.Length),
				Severity: SeverityError,
			})
			continue
		}

		if over := math.Abs(s.XOffset) + s.Width/2 - panelLength/2; over > 1e-9 {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  fmt.Sprintf("skylight extends %.3g past its panel edge along the slope", over),
				Severity: SeverityWarning,
			})
		}
		if over := math.Abs(s.YOffset) + s.Length/2 - b.Dimensions.Length/2; over > 1e-9 {
			errs = append(errs, ValidationError{
				Ref:      ref,
				Message:  fmt.Sprintf("skylight extends %.3g past the roof end", over),
				Severity: SeverityWarning,
			})
		}
	}

	return errs
}
