package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/niklas-joh/plantScraper"
	"golang.org/x/net/html"
)

// pest/disease tables are identified by caption or header text. Their layout
// quirk: the row's identifying cell is a th, not the first td.
const (
	pestCaption    = "Pests and Diseases"
	pestHeaderCell = "Pest/Disease"
)

// pestColumns is the fixed semantic mapping for the specialized table shape.
var pestColumns = [3]string{"type", "symptoms", "control"}

// ExtractTable converts a table element into its structured header/row
// representation. It never fails: a malformed table yields empty headers and
// rows. The specialized pest/disease path is chosen by caption or header
// text match; otherwise the generic extractor applies.
func ExtractTable(table *goquery.Selection) *plantscraper.Table {
	if table == nil || table.Length() == 0 {
		return emptyTable()
	}
	if isPestTable(table) {
		return extractPestTable(table)
	}
	return extractGenericTable(table)
}

func isPestTable(table *goquery.Selection) bool {
	if caption := table.Find("caption"); caption.Length() > 0 &&
		strings.Contains(caption.Text(), pestCaption) {
		return true
	}
	return strings.Contains(table.Text(), pestHeaderCell)
}

// extractPestTable reads the 4-column pest/disease shape: headers from the
// thead (or first row), each body row keyed by its th cell plus three td
// cells in order. Rows without a th or with fewer than three td cells are
// skipped.
func extractPestTable(table *goquery.Selection) *plantscraper.Table {
	headerRow := table.Find("thead tr").First()
	if headerRow.Length() == 0 {
		headerRow = table.Find("tr").First()
	}
	headers := cellTexts(headerRow.Find("th"))

	dataRows := table.Find("tbody tr")
	if dataRows.Length() == 0 {
		if all := table.Find("tr"); all.Length() > 1 {
			dataRows = all.Slice(1, goquery.ToEnd)
		} else {
			dataRows = all.Slice(0, 0)
		}
	}

	rows := []*plantscraper.Row{}
	dataRows.Each(func(_ int, tr *goquery.Selection) {
		keyCell := tr.Find("th").First()
		if keyCell.Length() == 0 {
			return
		}
		cells := tr.Find("td")
		if cells.Length() < len(pestColumns) {
			return
		}

		row := plantscraper.NewOrderedMap[string]()
		row.Set("pest", strings.TrimSpace(keyCell.Text()))
		for i, col := range pestColumns {
			row.Set(col, strings.TrimSpace(cells.Eq(i).Text()))
		}
		rows = append(rows, row)
	})

	return &plantscraper.Table{Headers: headers, Rows: rows}
}

// extractGenericTable reads any other table: th texts supply column names,
// each subsequent row maps column name to cell text. Rows with fewer cells
// than headers are skipped; extra cells beyond the headers are ignored.
func extractGenericTable(table *goquery.Selection) *plantscraper.Table {
	headers := cellTexts(table.Find("th"))

	dataRows := table.Find("tr")
	if len(headers) > 0 && dataRows.Length() > 0 {
		dataRows = dataRows.Slice(1, goquery.ToEnd)
	}

	rows := []*plantscraper.Row{}
	dataRows.Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < len(headers) {
			return
		}
		row := plantscraper.NewOrderedMap[string]()
		for i, header := range headers {
			row.Set(header, strings.TrimSpace(cells.Eq(i).Text()))
		}
		rows = append(rows, row)
	})

	return &plantscraper.Table{Headers: headers, Rows: rows}
}

func cellTexts(cells *goquery.Selection) []string {
	texts := []string{}
	cells.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}

func emptyTable() *plantscraper.Table {
	return &plantscraper.Table{Headers: []string{}, Rows: []*plantscraper.Row{}}
}

// extractTableNode adapts ExtractTable to the raw node walk used by the
// navigator.
func extractTableNode(n *html.Node) *plantscraper.Table {
	return ExtractTable(goquery.NewDocumentFromNode(n).Selection)
}
