// Package engine provides the Lisp evaluation engine for Gable.
// It wraps zygomys in a sandboxed environment and produces a Building
// from user source code.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chazu/gable/pkg/building"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error, a runtime error in user code, or a building
// that fails hard validation.
type EvalError struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine wraps the zygomys interpreter for Gable evaluation.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate takes Gable source code and produces the Building it declares.
// Each call creates a fresh zygomys sandbox with the DSL builtins
// registered, so evaluations never see each other's state.
//
// Return semantics:
//   - On success: returns building + nil errors + nil error
//   - On parse/eval/validation failure: returns nil building + eval errors + nil error
//   - On fatal failure (timeout, panic, superseded): returns nil + nil + error
func (e *Engine) Evaluate(source string) (*building.Building, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		b, evalErrs, err := e.evaluate(source)
		ch <- evalResult{building: b, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// noBuildingError is returned when a program runs to completion without
// ever declaring a building.
func noBuildingError() []EvalError {
	return []EvalError{{
		Message: "no building declared; start with (building :width W :length L :height H :pitch P)",
	}}
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*building.Building, []EvalError, error) {
	// An empty buffer cannot declare a building; report it the same way
	// as a program that never calls (building ...).
	if strings.TrimSpace(source) == "" {
		return nil, noBuildingError(), nil
	}

	// Create a fresh sandboxed zygomys environment.
	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	st := &buildState{}
	registerBuiltins(env, st)

	// Load and compile the preprocessed source string into bytecode.
	// Preprocessing rewrites characters in place and never adds or drops
	// newlines, so zygomys line numbers still refer to the user's source.
	err := env.LoadString(preprocessSource(source))
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	// Execute the compiled bytecode. The builtins populate st as a side
	// effect of evaluation.
	_, err = env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	if st.bld == nil {
		return nil, noBuildingError(), nil
	}

	// Boundary validation: a building with hard errors is not renderable,
	// so its findings come back as evaluation errors. Warnings do not
	// block; callers re-run building.Validate on the returned building to
	// surface them.
	if vr := building.Validate(st.bld); !vr.OK() {
		evalErrs := make([]EvalError, 0, len(vr.Errors))
		for _, ve := range vr.Errors {
			msg := ve.Message
			if ve.Ref != "" {
				msg = ve.Ref + ": " + ve.Message
			}
			evalErrs = append(evalErrs, EvalError{Message: msg})
		}
		return nil, evalErrs, nil
	}

	return st.bld, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	// Try to extract line numbers from the error message.
	// zygomys formats parse errors as "Error on line N: <details>\n"
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		detail := strings.TrimSpace(m[2])
		return []EvalError{{
			Line:    line,
			Col:     0,
			Message: detail,
		}}
	}

	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		detail := strings.TrimSpace(m[2])
		return []EvalError{{
			Line:    line,
			Col:     0,
			Message: detail,
		}}
	}

	// Fallback: no line info available.
	return []EvalError{{
		Line:    0,
		Col:     0,
		Message: strings.TrimSpace(msg),
	}}
}
