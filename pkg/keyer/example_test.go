package keyer_test

import (
	"context"
	"fmt"
	"time"

	"github.com/bft-labs/morsekey/pkg/effector"
	"github.com/bft-labs/morsekey/pkg/keyer"
	"github.com/bft-labs/morsekey/pkg/speed"
)

// ExampleNew keys a short message into a recorder.
func ExampleNew() {
	rec := effector.NewRecorder()
	k, err := keyer.New(keyer.Config{Speed: speed.Spec{ElementDuration: time.Millisecond}},
		keyer.WithEffector(rec),
	)
	if err != nil {
		fmt.Printf("failed to create keyer: %v\n", err)
		return
	}

	res, err := k.Send(context.Background(), "it")
	if err != nil {
		fmt.Printf("send failed: %v\n", err)
		return
	}

	fmt.Printf("%s: %d units, %d events\n", res.Message, res.Units, res.Delivered)
	for _, c := range rec.Calls() {
		fmt.Printf("%s %s @ %s\n", c.State, c.Duration, c.Offset)
	}

	// Output:
	// IT: 9 units, 6 events
	// ON 1ms @ 0s
	// OFF 1ms @ 1ms
	// ON 1ms @ 2ms
	// OFF 3ms @ 3ms
	// ON 3ms @ 6ms
	// OFF 0s @ 9ms
}

// ExampleBuildPlan shows a plan without keying it.
func ExampleBuildPlan() {
	plan, err := keyer.BuildPlan("sos", 100*time.Millisecond)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(plan.Morse)
	fmt.Println(plan.Units, plan.Duration())

	// Output:
	// ...   ---   ...
	// 27 2.7s
}
