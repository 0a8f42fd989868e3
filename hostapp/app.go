// Package hostapp is a minimal reference renderer/host for a
// fallingsand.Universe: a glfw window, a wgpu blit pipeline that uploads the
// Universe's render view as a texture every frame, and mouse-driven
// painting via the brush package. None of it is part of the simulation
// core's tested contract (§2 Non-goals name the renderer and input
// collaborators as out of scope); it exists to prove the core's external
// interfaces are actually usable end to end.
package hostapp

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/fallingsand"
	"github.com/gekko3d/fallingsand/brush"
	"github.com/gekko3d/fallingsand/config"
)

// App wires a Universe, a window, and input together into a run loop.
type App struct {
	cfg      *config.Config
	universe *fallingsand.Universe
	win      *window
	profiler *Profiler

	pipeline *wgpu.RenderPipeline
	texture  *wgpu.Texture
	texView  *wgpu.TextureView
	bindGrp  *wgpu.BindGroup

	paintSpecies fallingsand.Species
	lastCursor   mgl32.Vec2
	haveCursor   bool
}

// New builds an App around an existing Universe using cfg.Host for window
// and brush parameters.
func New(cfg *config.Config, universe *fallingsand.Universe) (*App, error) {
	win, err := newWindow(&cfg.Host)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:          cfg,
		universe:     universe,
		win:          win,
		profiler:     NewProfiler(),
		paintSpecies: fallingsand.Sand,
	}
	a.setupPipeline(universe.Width(), universe.Height())
	a.installCallbacks()
	return a, nil
}

func (a *App) setupPipeline(width, height int) {
	shader, err := a.win.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "blit",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: blitShaderSource},
	})
	if err != nil {
		panic(err)
	}
	defer shader.Release()

	pipeline, err := a.win.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Vertex: wgpu.VertexState{Module: shader, EntryPoint: "vs_main"},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{Format: a.win.surfaceConfig.Format, WriteMask: wgpu.ColorWriteMaskAll},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
		},
		Multisample: wgpu.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
	})
	if err != nil {
		panic(err)
	}
	a.pipeline = pipeline

	texture, err := a.win.device.CreateTexture(&wgpu.TextureDescriptor{
		Size:          wgpu.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRG8Uint,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	a.texture = texture

	view, err := texture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	a.texView = view

	layout := pipeline.GetBindGroupLayout(0)
	defer layout.Release()
	bindGroup, err := a.win.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout:  layout,
		Entries: []wgpu.BindGroupEntry{{Binding: 0, TextureView: a.texView}},
	})
	if err != nil {
		panic(err)
	}
	a.bindGrp = bindGroup
}

func (a *App) installCallbacks() {
	a.win.glfw.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft && action == glfw.Release {
			a.haveCursor = false
		}
	})
}

// uploadRenderView copies the Universe's current render view into the blit
// texture. Called once per frame before the render pass; the render view
// aliases Universe-owned memory (§6), so this copy must happen before the
// next Tick or paint call invalidates it.
func (a *App) uploadRenderView() {
	view := a.universe.RenderView()
	w, h := uint32(a.universe.Width()), uint32(a.universe.Height())
	err := a.win.queue.WriteTexture(
		a.texture.AsImageCopy(),
		view,
		&wgpu.TextureDataLayout{BytesPerRow: w * 2, RowsPerImage: h},
		&wgpu.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)
	if err != nil {
		panic(err)
	}
}

// pollPaint reads the current cursor position and, while the left button is
// held, paints a brush stroke of a.paintSpecies from the last sampled cursor
// position to the current one.
func (a *App) pollPaint() {
	if a.win.glfw.GetMouseButton(glfw.MouseButtonLeft) != glfw.Press {
		a.haveCursor = false
		return
	}
	mx, my := a.win.glfw.GetCursorPos()
	ww, wh := a.win.glfw.GetSize()
	if ww <= 0 || wh <= 0 {
		return
	}
	// Window coordinates to grid coordinates.
	mx *= float64(a.universe.Width()) / float64(ww)
	my *= float64(a.universe.Height()) / float64(wh)
	cur := mgl32.Vec2{float32(mx), float32(my)}
	if !a.haveCursor {
		a.lastCursor = cur
		a.haveCursor = true
	}
	for _, s := range brush.Stroke(a.lastCursor, cur, float32(a.cfg.Host.BrushRadius)) {
		if a.paintSpecies == fallingsand.Ghost {
			continue // Ghost painting needs a group id; left to a dedicated tool key, not the default drag brush.
		}
		a.universe.SetCell(s.X, s.Y, a.paintSpecies)
	}
	a.lastCursor = cur
}

func (a *App) renderFrame() {
	a.profiler.BeginScope("upload")
	a.uploadRenderView()
	a.profiler.EndScope("upload")

	a.profiler.BeginScope("present")
	next, err := a.win.surface.GetCurrentTexture()
	if err != nil {
		panic(err)
	}
	view, err := next.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()

	encoder, err := a.win.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{View: view, LoadOp: wgpu.LoadOpClear, StoreOp: wgpu.StoreOpStore, ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1}},
		},
	})
	pass.SetPipeline(a.pipeline)
	pass.SetBindGroup(0, a.bindGrp, nil)
	pass.Draw(3, 1, 0, 0)
	if err := pass.End(); err != nil {
		panic(err)
	}
	pass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmd.Release()

	a.win.queue.Submit(cmd)
	a.win.surface.Present()
	a.profiler.EndScope("present")
}

// Run drives the window's event loop, ticking the Universe once per frame.
// It blocks until the window is closed.
func (a *App) Run() {
	defer a.win.close()
	for !a.win.shouldClose() {
		glfw.PollEvents()
		a.pollPaint()

		a.profiler.BeginScope("tick")
		a.universe.Tick()
		a.profiler.EndScope("tick")

		a.renderFrame()
	}
}
