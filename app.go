package main

import (
	"context"
	_ "embed"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chazu/gable/internal/logger"
	"github.com/chazu/gable/pkg/assemble"
	"github.com/chazu/gable/pkg/building"
	"github.com/chazu/gable/pkg/engine"
	"github.com/chazu/gable/pkg/geometry"
	"github.com/chazu/gable/pkg/kernel"
	"github.com/chazu/gable/pkg/kernel/manifold"
	"github.com/chazu/gable/pkg/kernel/sdfx"
)

// colorPalette assigns distinct colors to parts whose descriptor carries
// none. Layout colors every node, so this is a fallback only.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// defaultSource is the starter design offered to a fresh editor.
//
//go:embed examples/workshop.gable
var defaultSource string

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	engine *engine.Engine
	kernel kernel.Kernel

	// Geometry memo: the last successful result, keyed by building
	// fingerprint. Editor keystrokes that re-evaluate to the same
	// building skip layout and meshing entirely.
	mu              sync.Mutex
	lastFingerprint string
	lastResult      *EvalResult
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable diagnostic for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to the frontend. Scene carries
// the descriptor tree so the viewer can label parts and drive pickers;
// Fingerprint identifies the building the meshes were generated from.
type EvalResult struct {
	Meshes      []MeshData      `json:"meshes"`
	Scene       *geometry.Scene `json:"scene,omitempty"`
	Errors      []EvalErrorData `json:"errors"`
	Warnings    []EvalErrorData `json:"warnings"`
	Fingerprint string          `json:"fingerprint,omitempty"`
}

// NewApp creates a new App with an engine and the sdfx kernel.
func NewApp() *App {
	return &App{
		engine: engine.NewEngine(),
		kernel: sdfx.New(),
	}
}

// SelectKernel switches the geometry backend by config name. "manifold"
// requires a build with -tags=manifold; when it is unavailable the app
// keeps the sdfx backend rather than failing to start. Switching drops
// the geometry memo since meshes differ across backends.
func (a *App) SelectKernel(name string) {
	var k kernel.Kernel
	switch name {
	case "", "sdfx":
		k = sdfx.New()
	case "manifold":
		mk, err := manifold.New()
		if err != nil {
			logger.Warn("manifold kernel unavailable, using sdfx", zap.Error(err))
			k = sdfx.New()
		} else {
			logger.Info("using manifold kernel")
			k = mk
		}
	default:
		logger.Warn("unknown kernel, using sdfx", zap.String("kernel", name))
		k = sdfx.New()
	}

	a.mu.Lock()
	a.kernel = k
	a.lastFingerprint = ""
	a.lastResult = nil
	a.mu.Unlock()
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// DefaultSource returns the starter program shown when the editor opens
// with no saved buffer.
func (a *App) DefaultSource() string {
	return defaultSource
}

// Evaluate takes Gable source and returns mesh data + diagnostics.
// This is the primary binding called by the frontend editor.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the source into a building.
	bld, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, superseded).
		logger.Error("evaluation failed", zap.Error(err))
		result.Errors = append(result.Errors, EvalErrorData{
			Line:    0,
			Col:     0,
			Message: err.Error(),
		})
		return result
	}

	// Step 2: Convert eval errors to the frontend format.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 3: Collect advisory warnings. The engine already rejected hard
	// validation errors, so only warnings can remain.
	for _, w := range building.Validate(bld).Warnings {
		msg := w.Message
		if w.Ref != "" {
			msg = w.Ref + ": " + w.Message
		}
		result.Warnings = append(result.Warnings, EvalErrorData{Message: msg})
	}

	// Step 4: Geometry memo. Layout is pure, so an unchanged building
	// means an unchanged scene and unchanged meshes.
	fp := bld.Fingerprint()
	a.mu.Lock()
	if a.lastFingerprint == fp && a.lastResult != nil {
		cached := *a.lastResult
		a.mu.Unlock()
		logger.Debug("geometry memo hit", zap.String("fingerprint", fp[:12]))
		return cached
	}
	k := a.kernel
	a.mu.Unlock()

	// Step 5: Lay out the descriptor scene and realize it as meshes.
	start := time.Now()
	scene := geometry.Layout(bld)
	parts, err := assemble.Assemble(scene, k)
	if err != nil {
		logger.Error("assembly failed", zap.Error(err))
		result.Errors = append(result.Errors, EvalErrorData{
			Line:    0,
			Col:     0,
			Message: "assembly failed: " + err.Error(),
		})
		return result
	}

	// Step 6: Convert kernel meshes to the frontend MeshData format.
	for i, p := range parts {
		color := p.Color
		if color == "" {
			color = colorPalette[i%len(colorPalette)]
		}
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: p.Mesh.Vertices,
			Normals:  p.Mesh.Normals,
			Indices:  p.Mesh.Indices,
			PartName: p.Mesh.PartName,
			Color:    color,
		})
	}
	result.Scene = scene
	result.Fingerprint = fp

	logger.Debug("building realized",
		zap.Int("parts", len(result.Meshes)),
		zap.Int("solids", scene.Solids()),
		zap.Duration("took", time.Since(start)))

	a.mu.Lock()
	cached := result
	a.lastFingerprint = fp
	a.lastResult = &cached
	a.mu.Unlock()

	return result
}
