package projection

import (
	"sort"

	"layoffs/internal/core/i18n"
	"layoffs/internal/core/layoff"
	ptime "layoffs/internal/platform/time"
)

// CardsView is the card or list collection for a filtered subset
type CardsView struct {
	Count        int          `json:"count"`
	CountLabel   string       `json:"count_label"`
	Items        []RecordView `json:"items"`
	Empty        bool         `json:"empty"`
	EmptyMessage string       `json:"empty_message,omitempty"`
}

// Cards projects records newest first; undated records keep their order at the end
func Cards(records []layoff.Record, l i18n.Lang, tr Translator) CardsView {
	l = l.Or(i18n.DefaultLang)

	type dated struct {
		rec layoff.Record
		at  int64
		ok  bool
	}
	rows := make([]dated, len(records))
	for i, r := range records {
		t, ok := ptime.ParseDate(r.Date)
		rows[i] = dated{rec: r, at: t.Unix(), ok: ok}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ok != rows[j].ok {
			return rows[i].ok
		}
		return rows[i].at > rows[j].at
	})

	v := CardsView{
		Count: len(records),
		Items: make([]RecordView, 0, len(records)),
	}
	for _, row := range rows {
		v.Items = append(v.Items, Record(row.rec, l, tr))
	}
	v.CountLabel = CountLabel(v.Count, l, tr)
	if v.Count == 0 {
		v.Empty = true
		v.EmptyMessage = tr.T(l, "noResults")
	}
	return v
}

// CountLabel renders "1 result" or "N results"
func CountLabel(n int, l i18n.Lang, tr Translator) string {
	key := "results"
	if n == 1 {
		key = "result"
	}
	return i18n.Number(l, n) + " " + tr.T(l, key)
}
