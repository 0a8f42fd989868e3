package hostapp

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/fallingsand/config"
)

// window owns the glfw window and the wgpu device/surface it presents to.
type window struct {
	glfw *glfw.Window

	instance      *wgpu.Instance
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration
}

// newWindow opens a glfw window sized per cfg.Host and stands up a wgpu
// device and swapchain surface targeting it.
func newWindow(cfg *config.HostConfig) (*window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("hostapp: glfw.Init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.WindowWidth, cfg.WindowHeight, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("hostapp: glfw.CreateWindow: %w", err)
	}

	instance := wgpu.CreateInstance(nil)
	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(win))

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("hostapp: RequestAdapter: %w", err)
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "fallingsand device",
	})
	if err != nil {
		return nil, fmt.Errorf("hostapp: RequestDevice: %w", err)
	}

	caps := surface.GetCapabilities(adapter)
	presentMode := wgpu.PresentModeImmediate
	if cfg.VSync {
		presentMode = wgpu.PresentModeFifo
	}
	surfaceConfig := &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(cfg.WindowWidth),
		Height:      uint32(cfg.WindowHeight),
		PresentMode: presentMode,
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, surfaceConfig)

	return &window{
		glfw:          win,
		instance:      instance,
		surface:       surface,
		adapter:       adapter,
		device:        device,
		queue:         device.GetQueue(),
		surfaceConfig: surfaceConfig,
	}, nil
}

func (w *window) shouldClose() bool {
	return w.glfw.ShouldClose()
}

func (w *window) close() {
	w.glfw.Destroy()
	glfw.Terminate()
}
