// Package render draws the frames the window shows before dashboard
// content arrives: the startup splash, error panels, and the blanking
// frame.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Layout constants
const (
	titleOffsetY       = 48 // offset above center for the wordmark
	messageStartY      = 12 // first message line below center
	messageLineSpacing = 20
	bottomMarginY      = 28
	minTextMarginX     = 10
	errorTitleOffsetY  = 64
	errorMessageStartY = 24
	maxLineWrapChars   = 70
)

// Dashboard palette: dark background, high-contrast text.
var (
	background = color.RGBA{16, 18, 22, 255}
	wordmark   = color.RGBA{235, 235, 235, 255}
	bodyText   = color.RGBA{170, 175, 182, 255}
	mutedText  = color.RGBA{110, 115, 122, 255}
	errorText  = color.RGBA{230, 90, 80, 255}
)

// StartupScreen renders the splash shown while the dashboard is
// connecting, PNG-encoded.
func StartupScreen(width, height int, message string) ([]byte, error) {
	img := newFrame(width, height)

	drawCenteredText(img, width, height/2-titleOffsetY, "ROADHUD", wordmark)

	if message != "" {
		startY := height/2 + messageStartY
		for i, line := range splitLines(message) {
			drawCenteredText(img, width, startY+i*messageLineSpacing, line, bodyText)
		}
	}

	drawCenteredText(img, width, height-bottomMarginY, "In-dash display", mutedText)
	return encode(img)
}

// ErrorScreen renders a full-panel error notice, PNG-encoded.
func ErrorScreen(width, height int, title, message string) ([]byte, error) {
	img := newFrame(width, height)

	drawCenteredText(img, width, height/2-errorTitleOffsetY, title, errorText)

	startY := height/2 - errorMessageStartY
	for i, line := range wrapText(message, maxLineWrapChars) {
		drawCenteredText(img, width, startY+i*messageLineSpacing, line, bodyText)
	}

	drawCenteredText(img, width, height-bottomMarginY, "Check configuration and restart", mutedText)
	return encode(img)
}

// BlankScreen renders the all-dark frame shown while the display is
// blanked, PNG-encoded.
func BlankScreen(width, height int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return encode(img)
}

func newFrame(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return img
}

func encode(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCenteredText draws text centered horizontally at the given Y.
func drawCenteredText(img *image.RGBA, width, y int, text string, col color.Color) {
	face := basicfont.Face7x13

	textWidth := font.MeasureString(face, text).Ceil()
	x := (width - textWidth) / 2
	if x < 0 {
		x = minTextMarginX
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	d.DrawString(text)
}

// splitLines splits text on newlines.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i, ch := range text {
		if ch == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// wrapText breaks long text into lines of at most maxChars, preferring
// space boundaries.
func wrapText(text string, maxChars int) []string {
	if len(text) <= maxChars {
		return []string{text}
	}

	var lines []string
	runes := []rune(text)
	start := 0
	for start < len(runes) {
		end := start + maxChars
		if end > len(runes) {
			end = len(runes)
		}
		if end < len(runes) {
			for i := end; i > start; i-- {
				if runes[i] == ' ' {
					end = i
					break
				}
			}
		}
		lines = append(lines, string(runes[start:end]))
		start = end
		if start < len(runes) && runes[start] == ' ' {
			start++
		}
	}
	return lines
}
