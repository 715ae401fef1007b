package main

import (
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/leengari/mini-colstore/internal/engine"
)

// demoFilter demonstrates the filter operator
func demoFilter(eng *engine.Engine) {
	slog.Info("=== Filter: users with age > 30 ===")

	rows, err := eng.Filter("users", "age", ">", int64(30))
	if err != nil {
		color.Red("filter failed: %s", err)
		return
	}
	color.Green("filter matched %d rows", len(rows["id"]))
	printRows(rows)
}

// demoAggregate demonstrates scalar aggregation
func demoAggregate(eng *engine.Engine) {
	slog.Info("=== Aggregate: score statistics ===")

	for _, fn := range []string{"sum", "mean", "min", "max", "count"} {
		result, err := eng.Aggregate("users", "score", fn)
		if err != nil {
			color.Red("aggregate %s failed: %s", fn, err)
			continue
		}
		color.Cyan("%s(score) = %v", fn, result)
	}
}

// demoSort demonstrates sorting by a key column
func demoSort(eng *engine.Engine) {
	slog.Info("=== Sort: users by age descending ===")

	rows, err := eng.Sort("users", "age", false)
	if err != nil {
		color.Red("sort failed: %s", err)
		return
	}
	printRows(rows)
}

// demoGroupBy demonstrates grouped aggregation
func demoGroupBy(eng *engine.Engine) {
	slog.Info("=== GroupBy: order totals per user ===")

	rows, err := eng.GroupBy("orders", "user_id", "amount", "sum")
	if err != nil {
		color.Red("group_by failed: %s", err)
		return
	}
	printRows(rows)
}

// demoJoin demonstrates the four join types over the same key pair
func demoJoin(eng *engine.Engine) {
	slog.Info("=== Join: users x orders on id = user_id ===")

	for _, joinType := range []string{"inner", "left", "right", "full_outer"} {
		rows, err := eng.Join("users", "orders", []string{"id"}, []string{"user_id"}, joinType)
		if err != nil {
			color.Red("%s join failed: %s", joinType, err)
			continue
		}
		color.Yellow("-- %s join: %d rows", joinType, len(rows["id"]))
		if joinType == "full_outer" {
			// Full structural dump of the most interesting result
			spew.Dump(rows)
		}
	}
}

func printRows(rows engine.Rows) {
	for name, values := range rows {
		color.White("  %s: %v", name, values)
	}
}
