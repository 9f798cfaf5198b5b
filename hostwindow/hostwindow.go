// Package hostwindow is the OpenGL framebuffer blit collaborator: it opens
// a pixelgl window and renders a peripheral's RGBA framebuffer to it, with
// an optional debug panel showing CPU registers and disassembly. Generalized
// from a fixed 256x240 NES picture to any caller-chosen framebuffer size.
package hostwindow

import (
	"image"
	"image/color"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	scale      float64 = 2
	screenPosX float64 = 600
	screenPosY float64 = 400
	debugResW  float64 = 512
)

// Window renders a fbW x fbH peripheral framebuffer, optionally with a
// debug side panel.
type Window struct {
	fbRgba    *image.RGBA
	debugRgba *image.RGBA

	window      *pixelgl.Window
	fbMatrix    pixel.Matrix
	debugMatrix pixel.Matrix

	debugAtlas    *text.Atlas
	debugRegText  *text.Text
	debugInstText *text.Text

	isDebug  bool
	fbW, fbH int
}

// New opens a window sized for an fbW x fbH framebuffer, scaled by a fixed
// factor, with an optional debug panel.
func New(title string, fbW, fbH int, isDebug bool) *Window {
	rect := image.Rect(0, 0, fbW, fbH)
	fbRgba := image.NewRGBA(rect)

	fbScreenW := float64(fbW) * scale
	fbScreenH := float64(fbH) * scale

	rect = image.Rect(0, 0, int(debugResW), int(fbScreenH))
	debugRgba := image.NewRGBA(rect)

	screenW := fbScreenW
	if isDebug {
		screenW += debugResW
	}

	config := pixelgl.WindowConfig{
		Title:    title,
		Bounds:   pixel.R(0, 0, screenW, fbScreenH),
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(config)
	if err != nil {
		log.Fatal("hostwindow: unable to create pixelgl window: ", err)
	}

	pic := pixel.PictureDataFromImage(fbRgba)
	fbMatrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(scale))
	fbMatrix = fbMatrix.Scaled(pic.Bounds().Center().Scaled(scale), scale)

	debugPic := pixel.PictureDataFromImage(debugRgba)
	debugMatrix := pixel.IM.Moved(debugPic.Bounds().Center().Add(pixel.V(fbScreenW, 0)))

	debugAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	debugRegText := text.New(pixel.V(fbScreenW+8, fbScreenH-40), debugAtlas)
	debugInstText := text.New(pixel.V(fbScreenW+8, fbScreenH-180), debugAtlas)

	return &Window{
		fbRgba:        fbRgba,
		debugRgba:     debugRgba,
		window:        window,
		fbMatrix:      fbMatrix,
		debugMatrix:   debugMatrix,
		debugAtlas:    debugAtlas,
		debugRegText:  debugRegText,
		debugInstText: debugInstText,
		isDebug:       isDebug,
		fbW:           fbW,
		fbH:           fbH,
	}
}

// DrawPixel sets a single framebuffer pixel.
func (w *Window) DrawPixel(x, y int, c color.RGBA) {
	w.fbRgba.SetRGBA(x, y, c)
}

// WriteRegDebugString replaces the register-dump text in the debug panel.
func (w *Window) WriteRegDebugString(s string) {
	w.debugRegText.Clear()
	w.debugRegText.WriteString(s)
}

// WriteInstDebugString replaces the disassembly text in the debug panel.
func (w *Window) WriteInstDebugString(s string) {
	w.debugInstText.Clear()
	w.debugInstText.WriteString(s)
}

// ShouldClose reports whether the user requested the window be closed.
func (w *Window) ShouldClose() bool { return w.window.Closed() }

// UpdateScreen blits the current framebuffer (and debug panel, if enabled)
// to the window and polls for input events.
func (w *Window) UpdateScreen() {
	w.window.Clear(colornames.Black)

	sprite := spriteFromImage(w.fbRgba)
	sprite.Draw(w.window, w.fbMatrix)

	if w.isDebug {
		debugSprite := spriteFromImage(w.debugRgba)
		debugSprite.Draw(w.window, w.debugMatrix)
		w.debugRegText.Draw(w.window, pixel.IM)
		w.debugInstText.Draw(w.window, pixel.IM)
	}

	w.window.Update()
}

func spriteFromImage(img *image.RGBA) *pixel.Sprite {
	pic := pixel.PictureDataFromImage(img)
	return pixel.NewSprite(pic, pic.Bounds())
}
