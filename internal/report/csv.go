package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/wepayu/internal/domain"
)

// Entry - строка CSV-выгрузки folha
type Entry struct {
	Date       string `csv:"data"`
	Kind       string `csv:"tipo"`
	ID         string `csv:"id"`
	Name       string `csv:"nome"`
	Hours      string `csv:"horas"`
	Extra      string `csv:"extra"`
	Base       string `csv:"fixo"`
	Sales      string `csv:"vendas"`
	Commission string `csv:"comissao"`
	Gross      string `csv:"salario_bruto"`
	Deductions string `csv:"descontos"`
	Net        string `csv:"salario_liquido"`
	Method     string `csv:"metodo"`
}

// Entries раскладывает folha по строкам в порядке разделов текстового отчёта
func Entries(p *Payroll) []Entry {
	date := p.Date.Format(domain.ReportDateLayout)
	entries := make([]Entry, 0, len(p.Hourly)+len(p.Salaried)+len(p.Commissioned))

	for _, l := range p.Hourly {
		entries = append(entries, Entry{
			Date:       date,
			Kind:       "horista",
			ID:         l.ID,
			Name:       l.Name,
			Hours:      strconv.FormatInt(l.Normal, 10),
			Extra:      strconv.FormatInt(l.Extra, 10),
			Gross:      l.Gross.String(),
			Deductions: l.Deductions.String(),
			Net:        l.Net.String(),
			Method:     l.Method,
		})
	}
	for _, l := range p.Salaried {
		entries = append(entries, Entry{
			Date:       date,
			Kind:       "assalariado",
			ID:         l.ID,
			Name:       l.Name,
			Gross:      l.Gross.String(),
			Deductions: l.Deductions.String(),
			Net:        l.Net.String(),
			Method:     l.Method,
		})
	}
	for _, l := range p.Commissioned {
		entries = append(entries, Entry{
			Date:       date,
			Kind:       "comissionado",
			ID:         l.ID,
			Name:       l.Name,
			Base:       l.Base.String(),
			Sales:      l.Sales.String(),
			Commission: l.Commission.String(),
			Gross:      l.Gross.String(),
			Deductions: l.Deductions.String(),
			Net:        l.Net.String(),
			Method:     l.Method,
		})
	}
	return entries
}

// WriteCSV выводит folha в CSV с заголовком
func WriteCSV(w io.Writer, p *Payroll) error {
	entries := Entries(p)
	return gocsv.Marshal(&entries, w)
}

// WriteCSVFile создаёт или перезаписывает CSV-файл
func WriteCSVFile(path string, p *Payroll) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	entries := Entries(p)
	if err := gocsv.MarshalFile(&entries, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return f.Close()
}
