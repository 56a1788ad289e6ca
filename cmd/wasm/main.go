//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/figurate/figurate/backend-go/internal/engine"
	"github.com/figurate/figurate/backend-go/internal/figure"
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("renderSVG", js.FuncOf(renderSVG))
	api.Set("boardElements", js.FuncOf(boardElements))
	api.Set("sampleFigure", js.FuncOf(sampleFigure))

	// Register on global scope
	js.Global().Set("figurateEngine", api)
	js.Global().Set("figurateWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// renderSVG(figureJSON, mode) -> {svg} | {error}
func renderSVG(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing figure JSON"})
	}

	f, err := engine.ParseFigure([]byte(args[0].String()))
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	opts := engine.Options{}
	if len(args) > 1 {
		opts.Mode = figure.Mode(args[1].String())
	}

	svg, _ := engine.RenderSVG(f, opts)
	return js.ValueOf(map[string]interface{}{"svg": svg})
}

// boardElements(figureJSON) -> {elements} | {error}
func boardElements(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing figure JSON"})
	}

	f, err := engine.ParseFigure([]byte(args[0].String()))
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	data, err := json.Marshal(engine.BoardElements(f))
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{"elements": string(data)})
}

// sampleFigure() -> {figure}
func sampleFigure(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(figure.NewSampleFigure())
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{"figure": string(data)})
}
