package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/xuri/excelize/v2"
)

const maxDownloadBytes = 16 << 20

// ErrNoSource is returned when neither the spreadsheet nor a CSV URL is available.
var ErrNoSource = errors.New("no import source available")

type source struct {
	name string
	raw  []byte
	csv  bool
}

func (i *Importer) loadSource(ctx context.Context) (source, error) {
	if i.cfg.XLSXPath != "" {
		raw, err := os.ReadFile(i.cfg.XLSXPath)
		switch {
		case err == nil:
			return source{name: i.cfg.XLSXPath, raw: raw}, nil
		case !errors.Is(err, os.ErrNotExist):
			return source{}, fmt.Errorf("read spreadsheet: %w", err)
		}
	}

	if i.cfg.CSVURL == "" {
		return source{}, ErrNoSource
	}
	raw, err := i.download(ctx, i.cfg.CSVURL)
	if err != nil {
		return source{}, err
	}
	return source{name: i.cfg.CSVURL, raw: raw, csv: true}, nil
}

func (i *Importer) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build csv request: %w", err)
	}
	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download csv: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download csv: unexpected status %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read csv body: %w", err)
	}
	return raw, nil
}

func (s source) rows() ([][]string, error) {
	if s.csv {
		return readCSV(s.raw)
	}
	return readXLSX(s.raw)
}

// readXLSX returns the cells of the first sheet of the workbook.
func readXLSX(raw []byte) ([][]string, error) {
	book, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(raw []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}
