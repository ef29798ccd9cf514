package cmd

import (
	"strconv"

	"github.com/etnz/expense"
	"github.com/etnz/expense/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the rcd command line for shell completion.
//
// Indices for delete and dates for stats are predicted from the current month file.
func Completion() *complete.Command {
	indices := complete.PredictFunc(predictIndices)
	dates := complete.PredictFunc(predictDates)
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
			"month":    predict.Something,
			"config":   predict.Files("*.yaml"),
			"style":    predict.Set(Styles),
			"verbose":  predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add": {
				Flags: map[string]complete.Predictor{
					"d":           predict.Something,
					"description": predict.Something,
					"v":           predict.Something,
					"value":       predict.Something,
				},
			},
			"delete": {
				Flags: map[string]complete.Predictor{
					"i":     indices,
					"index": indices,
				},
			},
			"display": {
				Flags: map[string]complete.Predictor{
					"head": predict.Something,
					"tail": predict.Something,
				},
			},
			"fmt": {},
			"stats": {
				Flags: map[string]complete.Predictor{
					"d":    dates,
					"date": dates,
				},
			},
			"topic": {
				Args: predictTopics(),
			},
			"help":     {},
			"commands": {},
			"flags":    {},
		},
	}
}

// completionStore loads the current month store using the environment and the
// configuration file only: flags are not parsed while completing.
func completionStore() *expense.Store {
	s, err := ResolveSettings(Overrides{})
	if err != nil {
		return nil
	}
	session, err := expense.OpenMonth(s.DataDir, monthOrCurrent(s.Month))
	if err != nil {
		return nil
	}
	return session.Store()
}

func predictIndices(prefix string) []string {
	store := completionStore()
	if store == nil {
		return nil
	}
	var out []string
	for _, r := range store.List() {
		out = append(out, strconv.Itoa(r.Index))
	}
	return out
}

func predictDates(prefix string) []string {
	store := completionStore()
	if store == nil {
		return nil
	}
	var out []string
	for _, d := range store.Dates() {
		out = append(out, d.String())
	}
	return out
}

func predictTopics() complete.Predictor {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return predict.Nothing
	}
	return predict.Set(append(topics, docs.Readme))
}
