package cli

import (
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/dsl"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/aretw0/hexrune/pkg/nodes"
)

// Demo binding defaults.
const (
	DemoGreeting      = "Hello from HexRune"
	DemoFarewell      = "Goodbye"
	DemoSlowFrame     = float32(0.02)
	DemoSlowFrameText = "slow frame"
)

// BuildDemo fills s with the starter script written by "hexrune new":
// BeginPlay and EndPlay print a greeting and a farewell, and every Tick
// longer than the slow_frame binding prints a warning.
// Literal text lives in data bindings because unlinked pin values are not
// persisted, and each Get node feeds one input since a pin holds one link.
func BuildDemo(s *graph.Script) error {
	b := dsl.New(s)
	b.Binding("greeting", domain.StringValue(DemoGreeting)).
		Binding("farewell", domain.StringValue(DemoFarewell)).
		Binding("slow_frame", domain.FloatValue(DemoSlowFrame)).
		Binding("warning", domain.StringValue(DemoSlowFrameText))

	b.Add("begin", nodes.TypeBeginPlay).At(0, 0).Go(0, "hello")
	b.Add("hello", nodes.TypePrintString).At(300, 0)
	b.Get("greeting", "greeting").At(150, 60).Feed(0, "hello", 1)

	b.Add("tick", nodes.TypeTick).At(0, 200).
		Go(0, "branch").
		Feed(1, "slower", 0)
	b.Add("slower", nodes.TypeFloatMoreThan).At(150, 260).Feed(0, "branch", 1)
	b.Get("slow_frame", "slow_frame").At(0, 300).Feed(0, "slower", 1)
	b.Add("branch", nodes.TypeBranch).At(300, 200).Go(0, "warn")
	b.Add("warn", nodes.TypePrintString).At(500, 200)
	b.Get("warning", "warning").At(350, 280).Feed(0, "warn", 1)

	b.Add("end", nodes.TypeEndPlay).At(0, 400).Go(0, "bye")
	b.Add("bye", nodes.TypePrintString).At(300, 400)
	b.Get("farewell", "farewell").At(150, 460).Feed(0, "bye", 1)

	_, err := b.Build()
	return err
}
