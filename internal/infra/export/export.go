package export

import (
	"fmt"
	"math"
	"strings"
	"time"

	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/usecase/queries"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

var ErrUnsupportedFormat = errs.Mark(errs.New("format must be csv, json, xlsx or pdf"), errs.ErrDomainValidation)

// ParseFormat defaults to csv.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatJSON, FormatXLSX, FormatPDF:
		return f, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

type Document struct {
	ContentType string
	Filename    string
	Body        []byte
}

func Render(format Format, report *queries.ExportReport) (*Document, error) {
	var (
		body        []byte
		contentType string
		err         error
	)
	switch format {
	case FormatCSV:
		body, err = renderCSV(report)
		contentType = "text/csv; charset=utf-8"
	case FormatJSON:
		body, err = renderJSON(report)
		contentType = "application/json"
	case FormatXLSX:
		body, err = renderXLSX(report)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		body, err = renderPDF(report)
		contentType = "application/pdf"
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, errs.Wrapf(err, "render %s export", format)
	}
	return &Document{
		ContentType: contentType,
		Filename:    Filename(report, format),
		Body:        body,
	}, nil
}

func Filename(report *queries.ExportReport, format Format) string {
	return fmt.Sprintf("hydro-nexus_%s_%dh.%s", report.DeviceID, report.Hours, format)
}

// row is one bucket with the per-column rounding applied to every format.
type row struct {
	Time         string  `json:"time"`
	Temperature  float64 `json:"temperature"`
	PH           float64 `json:"ph"`
	EC           float64 `json:"ec"`
	Moisture     float64 `json:"moisture"`
	Humidity     float64 `json:"humidity"`
	ReadingCount int64   `json:"readingCount"`
}

var header = []string{"Timestamp", "Temperature_C", "pH", "EC_mScm", "Moisture_pct", "Humidity_pct", "ReadingCount"}

func rows(report *queries.ExportReport) []row {
	out := make([]row, 0, len(report.Buckets))
	for _, b := range report.Buckets {
		out = append(out, row{
			Time:         b.Bucket.UTC().Format(time.RFC3339),
			Temperature:  round(b.Temperature, 1),
			PH:           round(b.PH, 2),
			EC:           round(b.EC, 2),
			Moisture:     round(b.Moisture, 0),
			Humidity:     round(b.Humidity, 0),
			ReadingCount: b.ReadingCount,
		})
	}
	return out
}

func (r row) cells() []string {
	return []string{
		r.Time,
		formatFloat(r.Temperature),
		formatFloat(r.PH),
		formatFloat(r.EC),
		formatFloat(r.Moisture),
		formatFloat(r.Humidity),
		fmt.Sprintf("%d", r.ReadingCount),
	}
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
