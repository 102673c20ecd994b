// Package slide is a slide-to-accept control for [Ebitengine].
//
// A [Widget] shows a pill-shaped track with a round handle. Dragging the
// handle with a mouse or a finger past a fraction of the track ([Config]
// Threshold) and releasing completes the widget: the handle locks at the end
// of the track, an accepted [Signal] is emitted and, after
// [SuccessRevealDelay], a success message appears under the track together
// with a reset button. A short drag springs back without a signal.
//
// # Quick start
//
//	host := slide.NewHost(640, 480)
//	w := slide.NewWidget(slide.DefaultConfig(), slide.NewEbitenSurface(host))
//	w.X, w.Y = 170, 200
//	w.Attach(host)
//	host.OnAccepted(func(sig slide.Signal) { log.Println("accepted", sig.WidgetID) })
//	slide.Run(host, slide.RunConfig{Title: "Slide", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call [Host.Update]
// and [Host.Draw] directly.
//
// # Configuration
//
// [Config] carries the label, the success message, the width (pixels or a
// percentage of the host), the height, both colors and the threshold.
// [ConfigFromAttributes] builds one from string attributes the way markup
// would declare them, and [LoadConfigFile] reads the same keys from YAML or
// TOML. Invalid values fall back to defaults.
//
// # Input
//
// Hosts read ebiten mouse and touch input each frame. [Host.Feed] accepts
// pointer samples from any other source, such as a terminal. Raw events go
// through [Normalize], so widgets only ever see a [PointerInput] with a
// horizontal coordinate.
//
// Each attached widget holds seven listeners on its host. Reconfiguring or
// re-attaching replaces them, so handlers never stack.
//
// # Signals
//
// Signals go to the widget's OnAccepted/OnReset fields first, then to
// handlers registered with [Host.OnAccepted] and [Host.OnReset], then to the
// optional [SignalStore] (see the ecs subpackage for a Donburi adapter).
//
// # Automation
//
// [Host.InjectDrag], [Host.InjectClick] and friends queue synthetic input.
// [LoadTestScript] reads a JSON script of drags, clicks, waits, screenshots
// and programmatic completes/resets for a [TestRunner].
//
// [Ebitengine]: https://ebitengine.org
package slide
