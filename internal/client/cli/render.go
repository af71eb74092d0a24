package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/storerating/internal/client/dataview"
	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/client/screens"
	"github.com/dmitrijs2005/storerating/internal/client/services"
	"github.com/dmitrijs2005/storerating/internal/client/session"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// renderList prints the visible page of s with running row numbers, the
// active sort marked in the header.
func renderList(w io.Writer, s *screens.ListScreen) {
	v := s.View()
	q := v.Query

	tw := newTable(w)
	header := []string{"#"}
	for _, c := range s.Columns() {
		title := c.Title
		if c.Field == q.SortField {
			if q.SortDirection == dataview.Desc {
				title += " v"
			} else {
				title += " ^"
			}
		}
		header = append(header, title)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i, r := range v.Rows {
		cells := []string{strconv.Itoa(v.Offset() + i + 1)}
		for _, c := range s.Columns() {
			cells = append(cells, c.Cell(r))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()

	if len(v.Rows) == 0 {
		fmt.Fprintln(w, "No records found.")
	}

	pages := v.PageCount()
	if pages == 0 {
		pages = 1
	}
	footer := fmt.Sprintf("Page %d of %d, %d matching, %d per page", q.PageIndex+1, pages, v.MatchedCount, q.PageSize)
	if q.FilterText != "" {
		footer += fmt.Sprintf(", search %q", q.FilterText)
	}
	fmt.Fprintln(w, footer)
}

func printAdminStats(w io.Writer, s models.AdminStats) {
	fmt.Fprintf(w, "Total users:   %d\n", s.TotalUsers)
	fmt.Fprintf(w, "Total stores:  %d\n", s.TotalStores)
	fmt.Fprintf(w, "Total ratings: %d\n", s.TotalRatings)
	if len(s.MonthlyRatings) == 0 {
		return
	}

	fmt.Fprintln(w, "Monthly ratings:")
	tw := newTable(w)
	fmt.Fprintln(tw, "Month\t1*\t2*\t3*\t4*\t5*\tTotal")
	for _, m := range s.MonthlyRatings {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n", m.Month, m.R1, m.R2, m.R3, m.R4, m.R5, m.Total())
	}
	_ = tw.Flush()
}

func printOwnerSummary(w io.Writer, d services.OwnerDashboard) {
	if len(d.Stores) == 0 {
		fmt.Fprintln(w, "You have no stores yet.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "Store\tEmail\tAddress\tAverage")
	for _, s := range d.Stores {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\n", s.StoreName, s.StoreEmail, s.StoreAddress, s.AvgRating)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Average rating across stores: %.1f\n", d.AverageRating)
}

func printProfile(w io.Writer, s session.Session) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Name:\t%s\n", s.Name)
	fmt.Fprintf(tw, "Email:\t%s\n", s.Email)
	if s.Address != "" {
		fmt.Fprintf(tw, "Address:\t%s\n", s.Address)
	}
	fmt.Fprintf(tw, "Role:\t%s\n", s.Role)
	_ = tw.Flush()
}
