// Package export rasterizes figure HTML to PNG through a headless
// Chromium. Each render launches and tears down its own browser; a missing
// browser downgrades export to a warning and the HTML remains the primary
// artifact.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// Options configure the exporter viewport and browser.
type Options struct {
	Width      int
	Height     int
	BrowserBin string // empty = auto-detect
	Timeout    time.Duration
}

// DefaultOptions returns the standard figure viewport.
func DefaultOptions() Options {
	return Options{Width: 1920, Height: 1080, Timeout: 60 * time.Second}
}

// Exporter renders HTML files to PNG.
type Exporter struct {
	opts Options
	log  *zap.Logger
}

// New builds an exporter. A nil logger disables diagnostics.
func New(opts Options, log *zap.Logger) *Exporter {
	if opts.Width <= 0 {
		opts.Width = 1920
	}
	if opts.Height <= 0 {
		opts.Height = 1080
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{opts: opts, log: log}
}

// Available reports whether a usable browser binary can be found.
func (e *Exporter) Available() bool {
	if e.opts.BrowserBin != "" {
		_, err := os.Stat(e.opts.BrowserBin)
		return err == nil
	}
	_, ok := launcher.LookPath()
	return ok
}

// Render loads the HTML file and writes a PNG clipped to the configured
// viewport. Launch and teardown happen per call.
func (e *Exporter) Render(htmlPath, pngPath string) error {
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("resolve html path: %w", err)
	}

	l := launcher.New().Headless(true)
	if e.opts.BrowserBin != "" {
		l = l.Bin(e.opts.BrowserBin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Timeout(e.opts.Timeout)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + abs})
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             e.opts.Width,
		Height:            e.opts.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return fmt.Errorf("set viewport: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait for load: %w", err)
	}
	// Webfonts and SVG text settle a beat after the load event.
	time.Sleep(400 * time.Millisecond)

	data, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
		Clip: &proto.PageViewport{
			X: 0, Y: 0,
			Width:  float64(e.opts.Width),
			Height: float64(e.opts.Height),
			Scale:  1,
		},
	})
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	if err := os.WriteFile(pngPath, data, 0o644); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	e.log.Debug("rendered figure",
		zap.String("html", htmlPath),
		zap.String("png", pngPath),
		zap.Int("width", e.opts.Width),
		zap.Int("height", e.opts.Height))
	return nil
}
