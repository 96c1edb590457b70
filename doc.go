// Package signal is a particle animation engine for [Ebitengine].
//
// Thousands of points morph between formations (a golden-angle spiral, a
// honeycomb of hexagons, a travelling EKG wave and a text silhouette) with
// eased, per-point staggered tweening of position and color. The scene loops
// through its [Cycle] automatically, or advances on click once the cycle's
// click gate opens.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene, err := signal.NewScene(1024, 576, signal.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	signal.Run(scene, signal.RunConfig{
//		Title: "Finding the signal", Width: 1024, Height: 576, Resizable: true,
//	})
//
// [Scene] implements [ebiten.Game], so it can also be passed to
// [ebiten.RunGame] directly or embedded in a larger game.
//
// # Headless rendering
//
// Without a window, drive the scene with [Scene.Advance] and an explicit
// millisecond clock, and draw it onto a [GGSurface]:
//
//	surf := signal.NewGGSurface(800, 400)
//	for ms := 0.0; ms < 6000; ms += 1000.0 / 60 {
//		scene.Advance(ms)
//	}
//	scene.Render(surf)
//	surf.Context().SavePNG("frame.png")
//
// # Layouts
//
// Each [State] has a layout that writes every point's Target and TargetColor:
//
//   - [StateCircle] places point i at [SpiralPoint].
//   - [StateHexagon] distributes points over [HexagonGrid] cells, rim first.
//   - [StateWave] follows [WaveSample], an EKG trace whose spike moves with
//     the clock.
//   - [StateText] maps points onto the ink pixels produced by [Rasterize].
//     Points beyond the ink count are parked off-canvas and fully transparent.
//
// Colors come from a per-state [Palette].
//
// # Timing
//
// A transition gives point i a delay of i·budget/N and then moves it over
// [Config].Duration with [Config].Easing. The transition is settled once
// every point has arrived; after [Config].Pause the next state of the cycle
// begins. Resizing reseeds the scene and cancels everything in flight.
//
// # Debugging
//
// [Scene.SetDebugMode] logs state changes and frame timings to stderr.
// [Scene.Screenshot], [Scene.InjectClick] and [LoadTestScript] support
// scripted visual testing.
//
// [Ebitengine]: https://ebitengine.org
package signal
