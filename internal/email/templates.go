package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// OrderEmailLine is one line of the order summary table. For the owner
// email the display fields come from the cosmetic cart items; the
// price and quantity come from the validated order lines.
type OrderEmailLine struct {
	Title     string
	Link      string
	Quantity  int
	Price     int64
	LineTotal int64
	IsSample  bool
}

// OrderEmailData feeds both order email templates.
type OrderEmailData struct {
	Reference    string
	CustomerName string
	Email        string
	Phone        string
	Street       string
	City         string
	Zip          string
	Note         string
	Realization  bool
	ProjectDesc  string
	Lines        []OrderEmailLine
	Total        int64
	Currency     string
}

// LeadEmailData feeds the contact/lead notification template.
type LeadEmailData struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	Realization bool
	ProjectDesc string
}

var ownerOrderTmpl = template.Must(template.New("ownerOrder").Parse(`
<h2>Nová objednávka {{.Reference}}</h2>
<p>
  <strong>{{.CustomerName}}</strong><br>
  {{.Email}} · {{.Phone}}<br>
  {{.Street}}, {{.City}} {{.Zip}}
</p>
<table border="1" cellpadding="6" cellspacing="0">
  <tr><th>Položka</th><th>Množství</th><th>Cena</th><th>Celkem</th></tr>
  {{range .Lines}}
  <tr>
    <td>{{if .Link}}<a href="{{.Link}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}{{if .IsSample}} (vzorek){{end}}</td>
    <td>{{.Quantity}}</td>
    <td>{{.Price}} {{$.Currency}}</td>
    <td>{{.LineTotal}} {{$.Currency}}</td>
  </tr>
  {{end}}
</table>
<p><strong>Celkem: {{.Total}} {{.Currency}}</strong></p>
{{if .Note}}<p>Poznámka: {{.Note}}</p>{{end}}
{{if .Realization}}<p>Zákazník má zájem o realizaci.{{if .ProjectDesc}} Popis projektu: {{.ProjectDesc}}{{end}}</p>{{end}}
`))

var customerOrderTmpl = template.Must(template.New("customerOrder").Parse(`
<h2>Děkujeme za Vaši objednávku</h2>
<p>Dobrý den, {{.CustomerName}},</p>
<p>Vaši objednávku <strong>{{.Reference}}</strong> jsme přijali a brzy se Vám ozveme
s potvrzením termínu dodání.</p>
<table border="1" cellpadding="6" cellspacing="0">
  <tr><th>Položka</th><th>Množství</th><th>Celkem</th></tr>
  {{range .Lines}}
  <tr>
    <td>{{.Title}}{{if .IsSample}} (vzorek){{end}}</td>
    <td>{{.Quantity}}</td>
    <td>{{.LineTotal}} {{$.Currency}}</td>
  </tr>
  {{end}}
</table>
<p><strong>Celkem: {{.Total}} {{.Currency}}</strong></p>
<p>Vinylové schody &amp; podlahy</p>
`))

var leadTmpl = template.Must(template.New("lead").Parse(`
<h2>Nová poptávka z webu</h2>
<p>
  <strong>{{.Name}}</strong><br>
  {{.Email}}{{if .Phone}} · {{.Phone}}{{end}}
</p>
{{if .Message}}<p>{{.Message}}</p>{{end}}
{{if .Realization}}<p>Zájem o realizaci.{{if .ProjectDesc}} Popis projektu: {{.ProjectDesc}}{{end}}</p>{{end}}
`))

// RenderOwnerOrderEmail builds the order notification for the business
// owner: full contact summary plus the order table.
func RenderOwnerOrderEmail(d OrderEmailData) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := ownerOrderTmpl.Execute(&buf, d); err != nil {
		return "", "", err
	}
	return fmt.Sprintf("Nová objednávka %s", d.Reference), buf.String(), nil
}

// RenderCustomerConfirmation builds the confirmation sent to the customer.
func RenderCustomerConfirmation(d OrderEmailData) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := customerOrderTmpl.Execute(&buf, d); err != nil {
		return "", "", err
	}
	return fmt.Sprintf("Potvrzení objednávky %s", d.Reference), buf.String(), nil
}

// RenderLeadEmail builds the owner notification for a contact/lead form
// submission.
func RenderLeadEmail(d LeadEmailData) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := leadTmpl.Execute(&buf, d); err != nil {
		return "", "", err
	}
	return "Nová poptávka z webu", buf.String(), nil
}
