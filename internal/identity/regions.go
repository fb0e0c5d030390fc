package identity

import (
	"strings"

	"golang.org/x/text/cases"
)

// regionOrganization is an organization with its main region code.
type regionOrganization struct {
	name string
	code int
}

// organizations are the organizations with a main region, in lookup order.
var organizations = []regionOrganization{
	{name: `ООО "ФК ПУЛЬС"`, code: 77},
	{name: `ООО "ПУЛЬС Ярославль"`, code: 76},
	{name: `ООО "ПУЛЬС Брянск"`, code: 32},
	{name: `ООО "ПУЛЬС СПб"`, code: 78},
	{name: `ООО "ПУЛЬС Волгоград"`, code: 34},
	{name: `ООО "ПУЛЬС Воронеж"`, code: 36},
	{name: `ООО "ПУЛЬС Казань"`, code: 16},
	{name: `ООО "ПУЛЬС Краснодар"`, code: 23},
	{name: `ООО "ПУЛЬС Хабаровск"`, code: 27},
	{name: `ООО "ПУЛЬС Иркутск"`, code: 38},
	{name: `ООО "ПУЛЬС Красноярск"`, code: 24},
	{name: `ООО "ПУЛЬС Екатеринбург"`, code: 66},
	{name: `ООО "ПУЛЬС Новосибирск"`, code: 54},
	{name: `ООО "ПУЛЬС Самара"`, code: 63},
}

// organizationByName matches the whole name first, then a case-insensitive substring.
func organizationByName(name string) (regionOrganization, bool) {
	fold := cases.Fold()
	wanted := fold.String(strings.TrimSpace(name))
	if wanted == "" {
		return regionOrganization{}, false
	}

	for _, org := range organizations {
		if fold.String(org.name) == wanted {
			return org, true
		}
	}

	for _, org := range organizations {
		if strings.Contains(fold.String(org.name), wanted) {
			return org, true
		}
	}

	return regionOrganization{}, false
}

func organizationByCode(code int) (regionOrganization, bool) {
	for _, org := range organizations {
		if org.code == code {
			return org, true
		}
	}

	return regionOrganization{}, false
}

// regionCode returns the main region of the organization, 0 when it has none.
func regionCode(name string) int {
	for _, org := range organizations {
		if org.name == name {
			return org.code
		}
	}

	return 0
}
