// Package table turns a slice of records plus column descriptors into a
// paginated grid payload. It is purely presentational and owns no state.
package table

// Column describes one rendered column: a header label and a per-row cell
// function.
type Column[T any] struct {
	Header string
	Cell   func(T) string
}

// Grid is the JSON shape the list endpoints return for one table instance.
// Empty is distinct from a pending load, which the handlers report separately.
type Grid struct {
	Title     string     `json:"title"`
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
	Total     int        `json:"total"`
	Page      int        `json:"page"`
	PageSize  int        `json:"page_size"`
	PageCount int        `json:"page_count"`
	Empty     bool       `json:"empty"`
}

// Render builds the grid for one 1-indexed page. A page number past the end
// clamps to the last non-empty page, so the last page is never empty while
// records exist.
func Render[T any](title string, records []T, columns []Column[T], page, pageSize int) Grid {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}

	pageCount := (len(records) + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if pageCount > 0 && page > pageCount {
		page = pageCount
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(records) {
		start = len(records)
	}
	if end > len(records) {
		end = len(records)
	}

	rows := make([][]string, 0, end-start)
	for _, rec := range records[start:end] {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = col.Cell(rec)
		}
		rows = append(rows, row)
	}

	return Grid{
		Title:     title,
		Columns:   headers,
		Rows:      rows,
		Total:     len(records),
		Page:      page,
		PageSize:  pageSize,
		PageCount: pageCount,
		Empty:     len(records) == 0,
	}
}
