package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wepayu/internal/domain"
)

const lineWidth = 127

var separator = strings.Repeat("=", lineWidth)

const (
	hourlyHeader       = "Nome                                 Horas Extra Salario Bruto Descontos Salario Liquido Metodo"
	hourlyRule         = "==================================== ===== ===== ============= ========= =============== ======================================"
	salariedHeader     = "Nome                                             Salario Bruto Descontos Salario Liquido Metodo"
	salariedRule       = "================================================ ============= ========= =============== ======================================"
	commissionedHeader = "Nome                  Fixo     Vendas   Comissao Salario Bruto Descontos Salario Liquido Metodo"
	commissionedRule   = "===================== ======== ======== ======== ============= ========= =============== ======================================"
)

// Write выводит folha в фиксированном текстовом формате
func Write(w io.Writer, p *Payroll) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "FOLHA DE PAGAMENTO DO DIA %s\n", p.Date.Format(domain.ReportDateLayout))
	bw.WriteString("====================================\n\n")

	writeSection(bw, "HORISTAS", hourlyHeader, hourlyRule)
	for _, l := range p.Hourly {
		fmt.Fprintf(bw, "%-36s %5d %5d %13s %9s %15s %s\n",
			l.Name, l.Normal, l.Extra, l.Gross, l.Deductions, l.Net, l.Method)
	}
	h := p.HourlyTotals()
	fmt.Fprintf(bw, "\nTOTAL HORISTAS                       %5d %5d %13s %9s %15s\n\n",
		h.Normal, h.Extra, h.Gross, h.Deductions, h.Net)

	writeSection(bw, "ASSALARIADOS", salariedHeader, salariedRule)
	for _, l := range p.Salaried {
		fmt.Fprintf(bw, "%-48s %13s %9s %15s %s\n",
			l.Name, l.Gross, l.Deductions, l.Net, l.Method)
	}
	s := p.SalariedTotals()
	fmt.Fprintf(bw, "\nTOTAL ASSALARIADOS                               %13s %9s %15s\n\n",
		s.Gross, s.Deductions, s.Net)

	writeSection(bw, "COMISSIONADOS", commissionedHeader, commissionedRule)
	for _, l := range p.Commissioned {
		fmt.Fprintf(bw, "%-21s %8s %8s %8s %13s %9s %15s %s\n",
			l.Name, l.Base, l.Sales, l.Commission, l.Gross, l.Deductions, l.Net, l.Method)
	}
	c := p.CommissionedTotals()
	fmt.Fprintf(bw, "\nTOTAL COMISSIONADOS   %8s %8s %8s %13s %9s %15s\n",
		c.Base, c.Sales, c.Commission, c.Gross, c.Deductions, c.Net)

	fmt.Fprintf(bw, "\nTOTAL FOLHA: %s\n", p.Total())

	return bw.Flush()
}

func writeSection(w *bufio.Writer, title, header, rule string) {
	heading := "===================== " + title + " "
	w.WriteString(separator + "\n")
	w.WriteString(heading + strings.Repeat("=", lineWidth-len(heading)) + "\n")
	w.WriteString(separator + "\n")
	w.WriteString(header + "\n")
	w.WriteString(rule + "\n")
}

// WriteFile создаёт или перезаписывает файл с folha
func WriteFile(path string, p *Payroll) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := Write(f, p); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}
