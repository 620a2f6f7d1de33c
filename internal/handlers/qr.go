package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/aaronzipp/douze-points/internal/game"
	"github.com/aaronzipp/douze-points/internal/render"
)

// HandleQR godoc
// @Summary Join QR code
// @Description PNG QR code for the client URL, so players can join from their phones.
// @Tags client
// @Produce png
// @Param url query string false "URL to encode, defaults to the configured public URL"
// @Success 200 {file} binary
// @Failure 400 {object} render.ErrorResponse
// @Router /qr [get]
func (ctx *Context) HandleQR(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" {
		target = ctx.PublicURL
	}
	parsed, err := url.Parse(target)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		render.Error(w, http.StatusBadRequest, "invalid_url", "url must be an absolute http(s) URL")
		return
	}

	png, err := qrcode.Encode(parsed.String(), qrcode.Medium, game.QRCodeSize)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
