package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// seedRow una fila del catálogo a cargar.
type seedRow struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Category  string
}

func demoCatalog() []seedRow {
	d := decimal.RequireFromString
	return []seedRow{
		{Name: "Młotek", Quantity: 12, UnitPrice: d("42.50"), Category: "Narzędzia"},
		{Name: "Śrubokręt krzyżakowy", Quantity: 4, UnitPrice: d("18.99"), Category: "Narzędzia"},
		{Name: "Wkręty 4x40 (100 szt.)", Quantity: 35, UnitPrice: d("9.90"), Category: "Elementy złączne"},
		{Name: "Kołki rozporowe 8mm", Quantity: 2, UnitPrice: d("6.49"), Category: "Elementy złączne"},
		{Name: "Farba biała 5L", Quantity: 7, UnitPrice: d("89.00"), Category: "Farby"},
		{Name: "Pędzel 50mm", Quantity: 0, UnitPrice: d("12.30"), Category: "Farby"},
		{Name: "Taśma izolacyjna", Quantity: 20, UnitPrice: d("4.20")},
	}
}

// decoderFor devuelve un lector que transcodifica a UTF-8 desde la codificación indicada.
func decoderFor(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "windows-1250", "cp1250":
		return transform.NewReader(r, charmap.Windows1250.NewDecoder()), nil
	case "iso-8859-2", "latin2":
		return transform.NewReader(r, charmap.ISO8859_2.NewDecoder()), nil
	case "iso-8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %q", encoding)
	}
}

// readCSV lee nazwa,liczba,cena,kategoria con cabecera. Acepta coma decimal ("12,50")
// y separador ';' (exportaciones de hojas de cálculo en configuración regional polaca).
func readCSV(r io.Reader, encoding string) ([]seedRow, error) {
	dec, err := decoderFor(r, encoding)
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}
	text := strings.TrimPrefix(string(raw), "\ufeff")

	cr := csv.NewReader(strings.NewReader(text))
	if first, _, _ := strings.Cut(text, "\n"); strings.Count(first, ";") > strings.Count(first, ",") {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"nazwa", "liczba", "cena"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("cabecera: falta la columna %q", required)
		}
	}
	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []seedRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		name := field(rec, "nazwa")
		if name == "" {
			continue
		}
		qty, err := strconv.Atoi(field(rec, "liczba"))
		if err != nil || qty < 0 {
			return nil, fmt.Errorf("línea %d: liczba inválida %q", line, field(rec, "liczba"))
		}
		price, err := decimal.NewFromString(strings.Replace(field(rec, "cena"), ",", ".", 1))
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("línea %d: cena inválida %q", line, field(rec, "cena"))
		}
		rows = append(rows, seedRow{Name: name, Quantity: qty, UnitPrice: price, Category: field(rec, "kategoria")})
	}
	return rows, nil
}
