// Package keyer wires the morse pipeline into one embeddable component.
//
// A Keyer encodes a message, run-length compresses its bit sequence, turns
// the runs into a timed plan and plays that plan against an effector:
//
//	k, err := keyer.New(keyer.Config{Speed: speed.Spec{WPM: 20}},
//	    keyer.WithEffector(effector.NewConsole(os.Stdout)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := k.Send(ctx, "SOS")
//
// # Speed
//
// [Config.Speed] selects the unit duration either directly or from a words
// per minute figure. Setting both is rejected by [New] with
// speed.ErrAmbiguousSpeedSpec, before anything is keyed. [Keyer.Reconfigure]
// swaps the speed for the next message.
//
// # Timeline
//
// A Keyer owns a single timeline. While a message is in flight, [Keyer.Send]
// returns [ErrBusy]. Canceling the context passed to Send stops keying at
// the next event boundary.
//
// # Events and plugins
//
// Implement [EventHandler] (or embed [BaseEventHandler]) and pass it with
// [WithEventHandler] to observe state changes and finished messages.
// Plugins registered with [WithPlugin] are initialized by [Keyer.Start] in
// registration order and shut down by [Keyer.Stop] in reverse order.
package keyer
