// Package building defines the parametric model for a pre-fabricated metal
// building: overall dimensions, wall-mounted features (doors, windows),
// roof skylights, and colors. Values in this package are plain data. The
// geometry derived from them (roof rise, wall frames, feature transforms)
// is recomputed on every read by pkg/geometry and never stored here.
package building

import "fmt"

// Default panel colors applied by New.
const (
	DefaultWallColor = "#A8B2B8"
	DefaultRoofColor = "#4C5A64"
)

// ---------------------------------------------------------------------------
// Dimensions
// ---------------------------------------------------------------------------

// Dimensions holds the four parameters every other measurement derives from.
// Width and Length are the footprint, Height is the eave height. RoofPitch
// uses the rise-per-12 convention: a pitch of 4 rises 4 units for every 12
// units of horizontal run.
type Dimensions struct {
	Width     float64 `json:"width"`
	Length    float64 `json:"length"`
	Height    float64 `json:"height"`
	RoofPitch float64 `json:"roof_pitch"`
}

// ---------------------------------------------------------------------------
// Walls
// ---------------------------------------------------------------------------

// WallPosition identifies one of the four walls. Front and back are the
// gable walls, perpendicular to the ridge; left and right are the eave
// walls, parallel to the ridge and of constant height.
type WallPosition int

const (
	WallFront WallPosition = iota
	WallBack
	WallLeft
	WallRight
)

func (p WallPosition) String() string {
	switch p {
	case WallFront:
		return "front"
	case WallBack:
		return "back"
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	default:
		return fmt.Sprintf("WallPosition(%d)", int(p))
	}
}

// Walls lists all wall positions in canonical order.
func Walls() []WallPosition {
	return []WallPosition{WallFront, WallBack, WallLeft, WallRight}
}

// ParseWall converts a wall name ("front", "back", "left", "right") into a
// WallPosition.
func ParseWall(s string) (WallPosition, error) {
	switch s {
	case "front":
		return WallFront, nil
	case "back":
		return WallBack, nil
	case "left":
		return WallLeft, nil
	case "right":
		return WallRight, nil
	default:
		return 0, fmt.Errorf("unknown wall %q (want front, back, left or right)", s)
	}
}

// ---------------------------------------------------------------------------
// Features
// ---------------------------------------------------------------------------

// Alignment selects which wall edge a feature's XOffset is measured from.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ParseAlignment converts an alignment name into an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q (want left, center or right)", s)
	}
}

// FeatureKind enumerates the wall-mounted feature types.
type FeatureKind int

const (
	FeatureDoor FeatureKind = iota
	FeatureWindow
	FeatureRollupDoor
	FeatureWalkDoor
)

func (k FeatureKind) String() string {
	switch k {
	case FeatureDoor:
		return "door"
	case FeatureWindow:
		return "window"
	case FeatureRollupDoor:
		return "rollup-door"
	case FeatureWalkDoor:
		return "walk-door"
	default:
		return fmt.Sprintf("FeatureKind(%d)", int(k))
	}
}

// FeaturePosition locates a feature on its wall. XOffset is measured from
// the wall's left or right edge, or from its centerline, depending on
// Align. YOffset is measured up from the ground to the feature's bottom
// edge.
type FeaturePosition struct {
	Wall    WallPosition `json:"wall"`
	XOffset float64      `json:"x_offset"`
	YOffset float64      `json:"y_offset"`
	Align   Alignment    `json:"align"`
}

// WallFeature is a door or window mounted on one wall. Width must not
// exceed the wall's width and Height must not exceed the eave height;
// features never reach above the eave line into the gable.
type WallFeature struct {
	ID       string          `json:"id"`
	Kind     FeatureKind     `json:"kind"`
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Position FeaturePosition `json:"position"`
}

// Skylight is a roof-mounted panel. XOffset is signed and measured from
// the ridge centerline: a negative offset assigns the skylight to the left
// roof panel, zero or positive to the right. YOffset runs along the
// building length within the panel.
type Skylight struct {
	Width   float64 `json:"width"`
	Length  float64 `json:"length"`
	XOffset float64 `json:"x_offset"`
	YOffset float64 `json:"y_offset"`
}

// ---------------------------------------------------------------------------
// Building
// ---------------------------------------------------------------------------

// Building is the complete parametric state. Features are keyed by ID,
// skylights by index. The geometry layer treats a Building as read-only.
type Building struct {
	Dimensions Dimensions    `json:"dimensions"`
	Features   []WallFeature `json:"features"`
	Skylights  []Skylight    `json:"skylights"`
	Color      string        `json:"color"`
	RoofColor  string        `json:"roof_color"`
}

// New returns a Building with the given dimensions and default colors.
func New(dims Dimensions) *Building {
	return &Building{
		Dimensions: dims,
		Color:      DefaultWallColor,
		RoofColor:  DefaultRoofColor,
	}
}

// AddFeature appends a wall feature.
func (b *Building) AddFeature(f WallFeature) {
	b.Features = append(b.Features, f)
}

// AddSkylight appends a skylight.
func (b *Building) AddSkylight(s Skylight) {
	b.Skylights = append(b.Skylights, s)
}

// Feature returns the feature with the given ID.
func (b *Building) Feature(id string) (WallFeature, bool) {
	for _, f := range b.Features {
		if f.ID == id {
			return f, true
		}
	}
	return WallFeature{}, false
}

// RemoveFeature deletes the feature with the given ID and reports whether
// it was present.
func (b *Building) RemoveFeature(id string) bool {
	for i, f := range b.Features {
		if f.ID == id {
			b.Features = append(b.Features[:i], b.Features[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveSkylight deletes the skylight at index i and reports whether the
// index was valid.
func (b *Building) RemoveSkylight(i int) bool {
	if i < 0 || i >= len(b.Skylights) {
		return false
	}
	b.Skylights = append(b.Skylights[:i], b.Skylights[i+1:]...)
	return true
}
