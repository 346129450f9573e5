package config

// Static site data consumed by the form endpoints. Editable without touching
// the handlers; addresses can still be overridden per environment (AppConfig).

const (
	DefaultQuoteSender    = "Tecnocarton Web <cotizaciones@tecnocarton.cl>"
	DefaultQuoteRecipient = "ventas@tecnocarton.cl"

	DefaultRecruitmentSender    = "Tecnocarton Web <postulaciones@tecnocarton.cl>"
	DefaultRecruitmentRecipient = "reclutamiento@tecnocarton.cl"
	RecruitmentSubjectPrefix    = "Postulación Web"
)

// Product is an entry of the public catalog. IDs match the values submitted
// by the quote form's product selector.
type Product struct {
	ID   string
	Name string
}

var Products = []Product{
	{ID: "planchas", Name: "Planchas corrugadas"},
	{ID: "rollos", Name: "Rollos de corrugado"},
	{ID: "troquelado", Name: "Cartón troquelado"},
	{ID: "cajas", Name: "Cajas a medida"},
	{ID: "autoarmables", Name: "Cajas autoarmables"},
}

// ProductName resolves a product id to its display name. Unknown ids come
// back unchanged so the email still shows what the client selected.
func ProductName(id string) string {
	for _, p := range Products {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}
