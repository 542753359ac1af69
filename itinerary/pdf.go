package itinerary

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"suratguide/models"
	"suratguide/utils"
)

// ShareURL is the planner page link encoded in the exported PDF.
func ShareURL(baseURL, id string) string {
	return baseURL + "/trip-planner?itinerary=" + url.QueryEscape(id)
}

// GET /api/itineraries/:id/pdf
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	view, ok := h.load(w, r, ps.ByName("id"))
	if !ok {
		return
	}

	data, err := RenderPDF(view, ShareURL(h.baseURL, view.ItineraryID))
	if err != nil {
		h.log.Error("render itinerary pdf", "id", view.ItineraryID, "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerary-"+view.ItineraryID+".pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// RenderPDF lays out one A4 page per itinerary with a QR code linking back to it.
func RenderPDF(view models.ItineraryView, link string) ([]byte, error) {
	qrPNG, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(view.Name, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(130, 10, tr(view.Name))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(130, 7, fmt.Sprintf("%d activities, %s hours, about %d day(s)",
		len(view.Activities), strconv.FormatFloat(view.TotalHours, 'f', -1, 64), view.EstimatedDays))
	pdf.Ln(7)
	if p := view.Preferences; p.Duration != "" || p.Group != "" || p.Budget != "" {
		pdf.Cell(130, 7, tr(fmt.Sprintf("Trip: %s days, %s, %s budget", orDash(string(p.Duration)), orDash(string(p.Group)), orDash(string(p.Budget)))))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	for i, a := range view.Activities {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(130, 7, tr(fmt.Sprintf("%d. %s", i+1, a.Name)))
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 10)
		details := fmt.Sprintf("%s | %s | %s h | %s", a.Category, durationLabel(a), strconv.FormatFloat(a.Hours, 'f', -1, 64), a.Cost)
		pdf.Cell(130, 6, tr(details))
		pdf.Ln(6)
		if a.Description != "" {
			pdf.MultiCell(120, 5, tr(a.Description), "", "L", false)
		}
		pdf.Ln(3)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, opts, 0, "")
	pdf.SetXY(150, 61)
	pdf.SetFont("Arial", "", 8)
	pdf.Cell(40, 4, "Scan to open in the planner")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func durationLabel(a models.ActivityRecord) string {
	if a.DurationLabel != "" {
		return a.DurationLabel
	}
	return strconv.FormatFloat(a.Hours, 'f', -1, 64) + " hours"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
