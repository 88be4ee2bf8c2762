package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/brianvoe/gofakeit/v6"
)

// Шаблоны названий ПО, имитирующие разнобой реальных инвентаризационных
// выгрузок: аббревиатуры, маркеры версий, архитектурные суффиксы.
var softwareTemplates = []string{
	"MS Office Professional Plus 2019",
	"Microsoft Office 2016 Standard",
	"ms office 2021",
	"Windows Server 2019 Datacenter x64",
	"win svr 2016 standard",
	"Microsoft Windows 10 Enterprise",
	"SQL Server 2017 Enterprise Edition",
	"ms sql svr 2019",
	"Oracle Database 19.3.0.0 Enterprise Edition",
	"oracle db 21c",
	"RHEL 8.6",
	"Red Hat Enterprise Linux 9.2 x86_64",
	"Adobe Acrobat DC Professional",
	"adobe acrobat 2020",
	"VMware vSphere 7.0",
	"vm ware vsphere 8.0 enterprise plus",
	"Python 3.9.16",
	"python ver 3.11",
	"7-Zip 23.01 x64",
	"Notepad++ v8.5",
}

// Генерирует CSV файлы инвентаризации для нагрузочного и ручного
// тестирования endpoint'а /api/process-csv.
func main() {
	outDir := flag.String("out", filepath.Join("data", "test"), "директория для тестовых файлов")
	flag.Parse()

	gofakeit.Seed(0)

	sizes := []struct {
		name string
		size int
	}{
		{"small", 100},
		{"medium", 1000},
		{"large", 10000},
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	for _, size := range sizes {
		path := filepath.Join(*outDir, fmt.Sprintf("inventory_%s.csv", size.name))
		if err := generateInventoryCSV(path, size.size); err != nil {
			log.Fatalf("Failed to generate %s: %v", path, err)
		}
		log.Printf("✓ Сгенерирован %s (%d строк)", path, size.size)
	}
}

// generateInventoryCSV пишет CSV файл инвентаризации на rows строк
func generateInventoryCSV(path string, rows int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"software_name", "install_date", "source"}); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		record := []string{
			gofakeit.RandomString(softwareTemplates),
			gofakeit.DateRange(
				gofakeit.Date().AddDate(-5, 0, 0),
				gofakeit.Date(),
			).Format("2006-01-02"),
			fmt.Sprintf("%s-%03d", gofakeit.RandomString([]string{"ws", "srv", "vm"}), gofakeit.Number(1, 999)),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}
