package productcontroller

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rasadnik-mimoza/mimoza-api/models"
)

// csvHeader is the fixed English export header. Imports additionally accept
// the localized aliases below; exports never use them.
var csvHeader = []string{"name", "category", "price", "availability", "sku", "care", "image"}

// columnAliases maps each semantic column to its accepted header names, in
// lookup order (English first, localized second). sku has no alias.
var columnAliases = map[string][]string{
	"name":         {"name", "naziv"},
	"category":     {"category", "kategorija"},
	"price":        {"price", "cijena"},
	"availability": {"availability", "dostupnost"},
	"sku":          {"sku"},
	"care":         {"care", "njega"},
	"image":        {"image", "slika"},
}

// headerIndex maps normalized header names to column positions. The first
// cell may carry a UTF-8 BOM from spreadsheet exports.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

// productFromRecord builds a catalog entry from one CSV row using
// alias-tolerant column lookup. ok is false when a numeric cell cannot be
// parsed; schema validation is the caller's job.
func productFromRecord(idx map[string]int, rec []string) (models.Product, bool) {
	get := func(column string) string {
		for _, name := range columnAliases[column] {
			i, found := idx[name]
			if !found || i >= len(rec) {
				continue
			}
			if v := strings.TrimSpace(rec[i]); v != "" {
				return v
			}
		}
		return ""
	}

	price := 0.0
	if raw := get("price"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.Product{}, false
		}
		price = parsed
	}

	return models.Product{
		Name:         get("name"),
		Category:     get("category"),
		Price:        &price,
		Availability: get("availability"),
		SKU:          optional(get("sku")),
		Care:         optional(get("care")),
		Image:        optional(get("image")),
	}, true
}

// WriteCatalogCSV renders stored product documents as CSV: fixed English
// header, one row per document in the order given. Embedded newlines in care
// are collapsed to spaces so each record stays on one line.
func WriteCatalogCSV(w io.Writer, docs []map[string]any) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, d := range docs {
		row := []string{
			cellString(d["name"]),
			cellString(d["category"]),
			cellNumber(d["price"]),
			cellString(d["availability"]),
			cellString(d["sku"]),
			collapseNewlines(cellString(d["care"])),
			cellString(d["image"]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func cellNumber(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case int:
		return strconv.Itoa(n)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	default:
		return ""
	}
}

func collapseNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
