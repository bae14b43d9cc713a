package domain

import "fmt"

// ReportKind names one of the downloadable dashboard reports.
type ReportKind string

const (
	ReportFinancial       ReportKind = "financial"
	ReportOccupancy       ReportKind = "occupancy"
	ReportRestaurantSales ReportKind = "restaurant-sales"
)

var reportFilenames = map[ReportKind]string{
	ReportFinancial:       "financial_report.csv",
	ReportOccupancy:       "occupancy_report.csv",
	ReportRestaurantSales: "restaurant_sales_report.csv",
}

// ParseReportKind converts a path segment into a ReportKind.
func ParseReportKind(s string) (ReportKind, error) {
	k := ReportKind(s)
	if _, ok := reportFilenames[k]; !ok {
		return "", fmt.Errorf("%w: unknown report %q", ErrValidation, s)
	}
	return k, nil
}

// Filename is the fixed download name for the report.
func (k ReportKind) Filename() string {
	return reportFilenames[k]
}

// Report is a uniform table: every row has exactly one value per column,
// already formatted for display.
type Report struct {
	Kind    ReportKind
	Columns []string
	Rows    [][]string
}

// DateRange is a half-open interval of calendar days [From, To).
type DateRange struct {
	From Date
	To   Date
}
