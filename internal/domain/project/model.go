package project

// Project is a single EU-funded investment record. Financial fields are
// kept as the raw text the source registry publishes; aggregation parses
// them on read and treats unparseable values as zero.
type Project struct {
	ID                   string `json:"id" xml:"id"`
	ProjectName          string `json:"projectName" xml:"projectName"`
	ProjectSummary       string `json:"projectSummary" xml:"projectSummary"`
	ContractNumber       string `json:"contractNumber" xml:"contractNumber"`
	BeneficiaryName      string `json:"beneficiaryName" xml:"beneficiaryName"`
	Fund                 string `json:"fund" xml:"fund"`
	SpecificObjective    string `json:"specificObjective" xml:"specificObjective"`
	Program              string `json:"program" xml:"program"`
	Priority             string `json:"priority" xml:"priority"`
	Measure              string `json:"measure" xml:"measure"`
	Type                 string `json:"type" xml:"type"`
	TypeOfIntervention   string `json:"typeOfIntervention" xml:"typeOfIntervention"`
	TotalProjectValuePLN string `json:"totalProjectValuePLN" xml:"totalProjectValuePLN"`
	UnionCoFinancingRate string `json:"unionCoFinancingRate" xml:"unionCoFinancingRate"`
	EuCoFinancingPLN     string `json:"euCoFinancingPLN" xml:"euCoFinancingPLN"`
	EuroExchangeRate     string `json:"euroExchangeRate" xml:"euroExchangeRate"`
	ProjectLocation      string `json:"projectLocation" xml:"projectLocation"`
	ProjectStartDate     Date   `json:"projectStartDate" xml:"projectStartDate"`
	ProjectEndDate       Date   `json:"projectEndDate" xml:"projectEndDate"`
	Category             string `json:"category" xml:"category"`
}

// Regions lists the 16 administrative regions (voivodeships) in canonical
// order. Pivot output follows this order; a project location string may
// contain any number of them.
var Regions = []string{
	"DOLNOŚLĄSKIE",
	"KUJAWSKO-POMORSKIE",
	"LUBELSKIE",
	"LUBUSKIE",
	"ŁÓDZKIE",
	"MAŁOPOLSKIE",
	"MAZOWIECKIE",
	"OPOLSKIE",
	"PODKARPACKIE",
	"PODLASKIE",
	"POMORSKIE",
	"ŚLĄSKIE",
	"ŚWIĘTOKRZYSKIE",
	"WARMIŃSKO-MAZURSKIE",
	"WIELKOPOLSKIE",
	"ZACHODNIOPOMORSKIE",
}

// DefaultCategories lists the project classification tags in declared
// order. The order is authoritative for pivot output; deployments may
// override the list via configuration.
var DefaultCategories = []string{
	"Edukacja",
	"Energetyka",
	"Badania i Innowacje",
	"Zdrowie",
	"Transport",
	"Społeczeństwo",
	"Środowisko",
	"Kultura i Turystyka",
	"Administracja",
	"Bezpieczeństwo",
	"Gospodarka Morska",
	"Łączność i Infrastruktura",
}
