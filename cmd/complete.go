package cmd

import (
	"github.com/etnz/pcquote"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictSlot completes slot labels and their aliases.
var predictSlot = complete.PredictFunc(func(prefix string) []string {
	var res []string
	for _, slot := range pcquote.Slots() {
		res = append(res, string(slot))
	}
	return append(res, "cpu", "cooler", "mb", "ram", "ssd", "gpu", "psu", "case", "monitor", "kit", "other1", "other2")
})

// predictPreset completes the built-in preset names.
var predictPreset = complete.PredictFunc(func(prefix string) []string {
	var res []string
	for _, p := range pcquote.DefaultPresets() {
		res = append(res, p.Name)
	}
	return res
})

// Completion describes the pcq command line for shell completion.
func Completion() *complete.Command {
	catalogFiles := predict.Or(predict.Files("*.json"), predict.Files("*.xlsx"))
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":  predict.Files("*.yaml"),
			"session": predict.Something,
			"v":       predict.Nothing,
			"plain":   predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"select": {Args: predictSlot},
			"custom": {
				Flags: map[string]complete.Predictor{
					"price": predict.Something,
					"cost":  predict.Something,
					"qty":   predict.Something,
				},
				Args: predictSlot,
			},
			"qty":   {Args: predictSlot},
			"set":   {Args: predictSlot},
			"clear": {Args: predictSlot},
			"reset": {},
			"preset": {
				Flags: map[string]complete.Predictor{"list": predict.Nothing},
				Args:  predictPreset,
			},
			"show": {
				Flags: map[string]complete.Predictor{
					"cards":     predict.Nothing,
					"no-profit": predict.Nothing,
					"snapshot":  predict.Nothing,
				},
			},
			"check": {},
			"export": {
				Flags: map[string]complete.Predictor{
					"format":  predict.Set{"text", "md", "json", "xlsx"},
					"o":       predict.Files("*"),
					"profit":  predict.Nothing,
					"no-time": predict.Nothing,
				},
			},
			"catalog": {
				Flags: map[string]complete.Predictor{
					"slot": predictSlot,
					"q":    predict.Something,
					"max":  predict.Something,
					"i":    catalogFiles,
					"o":    catalogFiles,
				},
			},
			"topic": {Args: predict.Set{"readme", "selection", "pricing", "presets", "catalog", "export", "config"}},
		},
	}
}
