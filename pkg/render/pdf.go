package render

import (
	"bytes"
	"errors"
	"image/png"
	"io"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/affine"
	"github.com/akeil/affine/internal/logging"
)

var errImageTooSmall = errors.New("image too small")

// SeriesPDF renders every state of a series on its own page.
//
// specs must be the list that produced states; they are used for the
// page captions.
func (c *Context) SeriesPDF(states affine.Series, specs []affine.Spec, w io.Writer) error {
	if states.Len() != len(specs)+1 {
		return affine.NewShapeError("got %d states for %d specs", states.Len(), len(specs))
	}
	norm, err := affine.Normalize(specs)
	if err != nil {
		return err
	}
	logging.Debug("Render PDF with %d pages", states.Len())

	pdf := setupPDF("A4", c.opts.Title)
	bounds := states.Bounds()
	for i, m := range states {
		title := "Step 0: original"
		if i > 0 {
			title = (Frame{Step: i - 1, Spec: norm[i-1]}).Title()
		}

		err = c.statePDFPage(pdf, m, bounds, title)
		if err != nil {
			return err
		}
	}

	return pdf.Output(w)
}

func setupPDF(pageSize, title string) *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, pageSize, fontDir)

	pdf.SetMargins(24, 24, 24) // left, top, right
	pdf.AliasNbPages("{totalPages}")
	pdf.SetFont("helvetica", "", 8)
	pdf.SetTextColor(127, 127, 127)
	pdf.SetProducer("affine", true)
	if title != "" {
		pdf.SetTitle(title, true)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-20)
		pdf.SetX(24)
		pdf.Cellf(0, 10, "%d / {totalPages}  |  %v", pdf.PageNo(), title)
	})

	return pdf
}

func (c *Context) statePDFPage(pdf *gofpdf.Fpdf, m affine.Matrix, bounds affine.Rect, title string) error {
	pdf.AddPage()

	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}

	// render to PNG
	var buf bytes.Buffer
	img := c.State(m, bounds, title)
	err := png.Encode(&buf, img)
	if err != nil {
		return err
	}
	pdf.RegisterImageOptionsReader(name, opts, &buf)
	if err := pdf.Error(); err != nil {
		return err
	}

	// The drawing will be scaled to the (usable) page width
	wPage, _ := pdf.GetPageSize()
	left, top, right, _ := pdf.GetMargins()
	w := wPage - left - right

	x := left
	y := top
	h := 0.0
	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, x, y, w, h, flow, opts, link, linkStr)

	return pdf.Error()
}
