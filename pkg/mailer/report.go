package mailer

import (
	"html/template"
	"strings"

	"fineasy/pkg/finance"
)

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Relatório Mensal - {{.Month}}</title>
  </head>
  <body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="color: #6366f1;">Relatório Financeiro - {{.Month}}</h1>
    <p>Olá {{.Name}}!</p>
    <p>Aqui está o resumo das suas finanças de {{.Month}}:</p>
    <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h2 style="margin-top: 0;">Resumo do Mês</h2>
      <table style="width: 100%; border-collapse: collapse;">
        <tr>
          <td style="padding: 10px; font-weight: bold;">Receitas:</td>
          <td style="padding: 10px; text-align: right; color: #10b981; font-weight: bold;">R$ {{printf "%.2f" .Report.Income}}</td>
        </tr>
        <tr>
          <td style="padding: 10px; font-weight: bold;">Despesas:</td>
          <td style="padding: 10px; text-align: right; color: #ef4444; font-weight: bold;">R$ {{printf "%.2f" .Report.Expense}}</td>
        </tr>
        <tr style="border-top: 2px solid #6366f1;">
          <td style="padding: 10px; font-weight: bold;">Saldo:</td>
          <td style="padding: 10px; text-align: right; color: {{.BalanceColor}}; font-weight: bold; font-size: 18px;">R$ {{printf "%.2f" .Report.Balance}}</td>
        </tr>
      </table>
    </div>
    <h3>Gastos por Categoria</h3>
    <table style="width: 100%; border-collapse: collapse; background-color: white;">
      <thead>
        <tr style="background-color: #6366f1; color: white;">
          <th style="padding: 10px; text-align: left;">Categoria</th>
          <th style="padding: 10px; text-align: right;">Valor</th>
          <th style="padding: 10px; text-align: right;">%</th>
        </tr>
      </thead>
      <tbody>
        {{range .Report.Categories}}<tr>
          <td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">{{.Name}}</td>
          <td style="padding: 8px; border-bottom: 1px solid #e5e7eb; text-align: right;">R$ {{printf "%.2f" .Amount}}</td>
          <td style="padding: 8px; border-bottom: 1px solid #e5e7eb; text-align: right;">{{printf "%.1f" .Percent}}%</td>
        </tr>{{end}}
      </tbody>
    </table>
    <p style="margin-top: 30px; color: #6b7280; font-size: 14px;">Total de transações: {{.Report.Count}}</p>
    <div style="margin-top: 30px; padding: 15px; background-color: #eff6ff; border-left: 4px solid #6366f1;">
      <p style="margin: 0;"><strong>Dica:</strong> {{.Report.Tip}}</p>
    </div>
    <p style="margin-top: 30px; text-align: center; color: #6b7280; font-size: 12px;">
      Este é um relatório automático gerado pelo seu sistema de controle financeiro.
    </p>
  </body>
</html>`))

// ReportHTML renders the monthly report as the email body. name falls back
// to the recipient address when the profile has no full name.
func ReportHTML(r *finance.MonthlyReport, name string) (string, error) {
	var b strings.Builder
	data := struct {
		Month        string
		Name         string
		BalanceColor string
		Report       *finance.MonthlyReport
	}{
		Month:        r.MonthLabel,
		Name:         name,
		BalanceColor: "#10b981",
		Report:       r,
	}
	if r.Balance < 0 {
		data.BalanceColor = "#ef4444"
	}
	if err := reportTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
