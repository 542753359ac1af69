package media

import (
	"bytes"
	"image"
	"image/color"
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"

	"suratguide/utils"
)

const (
	defaultWidth  = 300
	defaultHeight = 200
	maxSide       = 1600
)

var (
	fill  = color.NRGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	frame = color.NRGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff}
)

// Placeholder draws a neutral card of the given size with a thin frame.
func Placeholder(width, height int) *image.NRGBA {
	img := imaging.New(width, height, frame)
	if width > 4 && height > 4 {
		inner := imaging.New(width-4, height-4, fill)
		img = imaging.Paste(img, inner, image.Pt(2, 2))
	}
	return img
}

// GET /placeholder.png?width=&height=
func ServePlaceholder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	width := utils.IntParam(r, "width", defaultWidth, 1, maxSide)
	height := utils.IntParam(r, "height", defaultHeight, 1, maxSide)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, Placeholder(width, height), imaging.PNG); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render image")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(buf.Bytes())
}
