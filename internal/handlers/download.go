// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"logoforge/internal/imaging"
)

// pathParam reads a chi URL parameter.
func pathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// DownloadLogo handles GET /api/v1/logo/{id}/download/{format}.
// AI-generated logos download as png or jpg; template logos download as
// svg (the browser rasterizes them client-side when a bitmap is wanted).
func (a *API) DownloadLogo(w http.ResponseWriter, r *http.Request) {
	if a.cache == nil {
		fail(w, http.StatusServiceUnavailable, "Downloads are unavailable without the cache.")
		return
	}

	id := pathParam(r, "id")
	format := strings.ToLower(pathParam(r, "format"))
	if format == "jpeg" {
		format = "jpg"
	}

	switch format {
	case "png", "jpg", "svg":
	default:
		fail(w, http.StatusBadRequest, "Unsupported format. Use png, jpg or svg.")
		return
	}

	// Optional target width for jpg downloads, e.g. ?size=512.
	width := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			fail(w, http.StatusBadRequest, "Invalid size parameter.")
			return
		}
		width = n
	}

	logo, found := a.cache.GetLogo(r.Context(), id)
	if !found {
		fail(w, http.StatusNotFound, "Logo not found or expired.")
		return
	}

	if format == "svg" {
		if logo.SVGContent == "" {
			fail(w, http.StatusBadRequest, "SVG is not available for AI-generated logos.")
			return
		}
		serveDownload(w, "image/svg+xml", "logo-"+id+".svg", []byte(logo.SVGContent))
		return
	}

	img, found := a.cache.GetImage(r.Context(), id)
	if !found {
		if logo.SVGContent != "" {
			fail(w, http.StatusBadRequest, "Bitmap formats are not available for template logos; download the SVG instead.")
			return
		}
		fail(w, http.StatusNotFound, "Logo image not found or expired.")
		return
	}

	if format == "jpg" {
		var converted []byte
		var err error
		if width > 0 {
			converted, err = imaging.Scale(img.Data, width, 0)
		} else {
			converted, err = imaging.ToJPEG(img.Data, 0)
		}
		if err != nil {
			fail(w, http.StatusInternalServerError, "JPEG conversion failed.")
			return
		}
		serveDownload(w, "image/jpeg", "logo-"+id+".jpg", converted)
		return
	}

	serveDownload(w, img.ContentType, "logo-"+id+".png", img.Data)
}

func serveDownload(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
