package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"eoscan/pipeline"
)

// ParseInventoryXLSX читает XLSX выгрузку инвентаризации.
// Данные берутся с первого листа; контракт колонок тот же, что у CSV
// варианта: заголовок с обязательной software_name.
func ParseInventoryXLSX(reader io.Reader) ([]pipeline.Row, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in xlsx file")
	}

	allRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %q: %w", sheetName, err)
	}
	if len(allRows) < 2 {
		return nil, fmt.Errorf("xlsx file has no data rows")
	}

	indices, err := findInventoryColumnIndices(allRows[0])
	if err != nil {
		return nil, err
	}

	var rows []pipeline.Row
	for _, record := range allRows[1:] {
		if isEmptyInventoryRow(record) {
			continue
		}

		row := parseInventoryRow(record, indices)
		if row.SoftwareName == "" {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// DetectInventoryFormat определяет формат файла по расширению имени.
// Неизвестные расширения трактуются как CSV.
func DetectInventoryFormat(filename string) string {
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return "xlsx"
	}
	return "csv"
}
