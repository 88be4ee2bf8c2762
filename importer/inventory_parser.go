package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"eoscan/pipeline"
)

// inventoryColumnIndices индексы колонок инвентаризационного CSV
type inventoryColumnIndices struct {
	softwareName int
	installDate  int
	source       int
}

// ParseInventoryCSV читает CSV выгрузку инвентаризации и возвращает строки
// для конвейера обработки. Колонки определяются по заголовку: обязательна
// только software_name, install_date и source опциональны. Пустые строки и
// строки без названия ПО пропускаются.
func ParseInventoryCSV(reader io.Reader) ([]pipeline.Row, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv data: %w", err)
	}

	converted, err := decodeToUTF8(data)
	if err != nil {
		return nil, fmt.Errorf("failed to convert csv encoding: %w", err)
	}

	csvReader := csv.NewReader(strings.NewReader(string(converted)))
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv headers: %w", err)
	}

	indices, err := findInventoryColumnIndices(headers)
	if err != nil {
		return nil, err
	}

	var rows []pipeline.Row
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Битые строки пропускаем, файл целиком не бракуем
			continue
		}
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

// findInventoryColumnIndices определяет индексы колонок по заголовкам
func findInventoryColumnIndices(headers []string) (inventoryColumnIndices, error) {
	indices := inventoryColumnIndices{
		softwareName: -1,
		installDate:  -1,
		source:       -1,
	}

	for i, header := range headers {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "software_name", "software", "name", "наименование по":
			if indices.softwareName == -1 {
				indices.softwareName = i
			}
		case "install_date", "installed", "дата установки":
			if indices.installDate == -1 {
				indices.installDate = i
			}
		case "source", "host", "источник":
			if indices.source == -1 {
				indices.source = i
			}
		}
	}

	if indices.softwareName == -1 {
		return indices, fmt.Errorf("csv has no software_name column")
	}

	return indices, nil
}

// parseInventoryRow извлекает строку инвентаризации по найденным индексам
func parseInventoryRow(record []string, indices inventoryColumnIndices) pipeline.Row {
	cell := func(index int) string {
		if index >= 0 && index < len(record) {
			return strings.TrimSpace(record[index])
		}
		return ""
	}

	return pipeline.Row{
		SoftwareName: cell(indices.softwareName),
		InstallDate:  cell(indices.installDate),
		Source:       cell(indices.source),
	}
}

// isEmptyInventoryRow проверяет, что все ячейки строки пусты
func isEmptyInventoryRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// decodeToUTF8 приводит данные к UTF-8. Инвентаризационные выгрузки с
// Windows-хостов часто приходят в Windows-1252; валидный UTF-8 проходит
// без преобразования.
func decodeToUTF8(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		return data, nil
	}

	decoder := charmap.Windows1252.NewDecoder()
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, fmt.Errorf("windows-1252 decode failed: %w", err)
	}
	return decoded, nil
}
