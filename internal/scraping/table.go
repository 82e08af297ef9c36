package scraping

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// headerAliases maps column header text to the raw record field it feeds.
// Sources disagree on header wording; matching is substring, lowercased.
var headerAliases = map[string][]string{
	"name":     {"name", "player", "prospect"},
	"school":   {"school", "college", "team"},
	"position": {"pos", "position"},
	"height":   {"ht", "height"},
	"weight":   {"wt", "weight"},
	"grade":    {"grade", "score", "rating", "overall"},
}

func classifyHeader(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	for field, aliases := range headerAliases {
		for _, alias := range aliases {
			if strings.Contains(lower, alias) {
				return field
			}
		}
	}
	return ""
}

// ParseGradeTable extracts candidate records from the first HTML table whose
// header row contains at least a name and a grade column. Rows missing a name
// cell are skipped; everything else passes through as free text for the
// normalizer to judge.
func ParseGradeTable(html, source string, scrapedAt time.Time) ([]RawCandidateRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &TableError{Source: source, Message: "failed to parse HTML: " + err.Error()}
	}

	var records []RawCandidateRecord
	found := false

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		columns := make(map[int]string)
		table.Find("thead th, tr:first-child th, tr:first-child td").Each(func(i int, cell *goquery.Selection) {
			if field := classifyHeader(cell.Text()); field != "" {
				columns[i] = field
			}
		})

		hasName, hasGrade := false, false
		for _, field := range columns {
			switch field {
			case "name":
				hasName = true
			case "grade":
				hasGrade = true
			}
		}
		if !hasName || !hasGrade {
			return true // try the next table
		}
		found = true

		table.Find("tbody tr, tr").Each(func(rowIdx int, row *goquery.Selection) {
			// Skip the header row when the table has no tbody
			if row.Find("th").Length() > 0 {
				return
			}

			record := RawCandidateRecord{Source: source, ScrapedAt: scrapedAt}
			row.Find("td").Each(func(i int, cell *goquery.Selection) {
				field, ok := columns[i]
				if !ok {
					return
				}
				text := strings.TrimSpace(cell.Text())
				switch field {
				case "name":
					record.Name = text
				case "school":
					record.School = text
				case "position":
					record.Position = text
				case "height":
					record.Height = text
				case "weight":
					record.Weight = text
				case "grade":
					record.Grade = text
				}
			})

			if record.Name != "" {
				records = append(records, record)
			}
		})

		return false // first matching table wins
	})

	if !found {
		return nil, &TableError{Source: source, Message: "no grade table found"}
	}

	return records, nil
}
