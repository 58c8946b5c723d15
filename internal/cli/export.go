package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"optstrat/internal/models"
)

// CurveRow is one grid point of an exported profit/loss curve.
type CurveRow struct {
	Price        float64 `csv:"price"`
	ExpirationPL float64 `csv:"expiration_pl"`
	CurrentPL    float64 `csv:"current_pl"`
}

// CurveRows flattens a profile's grid and curves into rows.
func CurveRows(p *models.Profile) []*CurveRow {
	rows := make([]*CurveRow, len(p.Grid))
	for i, price := range p.Grid {
		rows[i] = &CurveRow{
			Price:        price,
			ExpirationPL: p.Expiration[i],
			CurrentPL:    p.Current[i],
		}
	}
	return rows
}

// WriteCurveCSV writes the profile's curves as CSV with a header row.
func WriteCurveCSV(w io.Writer, p *models.Profile) error {
	if err := gocsv.Marshal(CurveRows(p), w); err != nil {
		return fmt.Errorf("encoding curve csv: %w", err)
	}
	return nil
}

// ExportCurveCSV writes the profile's curves to the file at path.
func ExportCurveCSV(path string, p *models.Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCurveCSV(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
