package checkout

import (
	"strings"
	"text/template"
)

var summaryTmpl = template.Must(template.New("summary").Parse(`Новый заказ: {{.ID}}

Информация о клиенте:
ФИО: {{.Customer.FullName}}
Email: {{.Customer.Email}}
Телефон: {{.Customer.Phone}}
Адрес: {{.Customer.Address}}
Город: {{.Customer.City}}
Индекс: {{.Customer.ZipCode}}

Способ оплаты: {{.PaymentMethod.Label}}

Комментарий: {{if .Customer.Comment}}{{.Customer.Comment}}{{else}}Нет{{end}}

Товары:
{{range .Items}}- {{.Name}} x {{.Quantity}} = {{.Total}} руб.
{{end}}
Подытог: {{.Subtotal}} руб.
Доставка: {{.Shipping}} руб.
Итого: {{.Total}} руб.
`))

// Summary renders the plain-text order body sent to the shop owner.
func Summary(r Record) string {
	var b strings.Builder
	if err := summaryTmpl.Execute(&b, r); err != nil {
		return "order " + r.ID
	}
	return b.String()
}

func Subject(r Record) string {
	return "Новый заказ от " + r.Customer.FullName
}
