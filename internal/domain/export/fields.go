package export

import "github.com/mgolik/eufunds/internal/domain/project"

// The delimited and line-oriented formats project exactly these 17
// fields, in this order. The structured formats carry the full record.
var csvHeader = []string{
	"projectName",
	"projectSummary",
	"contractNumber",
	"beneficiaryName",
	"fund",
	"specificObjective",
	"program",
	"priority",
	"measure",
	"totalProjectValuePLN",
	"unionCoFinancingRate",
	"euCoFinancingPLN",
	"euroExchangeRate",
	"projectLocation",
	"projectStartDate",
	"projectEndDate",
	"category",
}

var txtLabels = []string{
	"Project Name",
	"Description",
	"Contract Number",
	"Beneficiary Name",
	"Fund",
	"Specific Objective",
	"Program",
	"Priority",
	"Measure",
	"Total Project Value (PLN)",
	"Union Co-Financing Rate",
	"EU Co-Financing (PLN)",
	"Euro Exchange Rate",
	"Project Location",
	"Project Start Date",
	"Project End Date",
	"Category",
}

func fieldValues(p project.Project) []string {
	return []string{
		p.ProjectName,
		p.ProjectSummary,
		p.ContractNumber,
		p.BeneficiaryName,
		p.Fund,
		p.SpecificObjective,
		p.Program,
		p.Priority,
		p.Measure,
		p.TotalProjectValuePLN,
		p.UnionCoFinancingRate,
		p.EuCoFinancingPLN,
		p.EuroExchangeRate,
		p.ProjectLocation,
		p.ProjectStartDate.String(),
		p.ProjectEndDate.String(),
		p.Category,
	}
}
