package export_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/mgolik/eufunds/internal/domain/export"
	"github.com/mgolik/eufunds/internal/domain/project"
)

func fixtureRecords() []project.Project {
	return []project.Project{
		{
			ID:                   "p1",
			ProjectName:          "Modernizacja linii kolejowej nr 8",
			ProjectSummary:       "Przebudowa odcinka Warszawa-Radom",
			ContractNumber:       "POIS.05.01.00-00-0001/20",
			BeneficiaryName:      "PKP Polskie Linie Kolejowe S.A.",
			Fund:                 "Fundusz Spójności",
			SpecificObjective:    "Rozwój sieci TEN-T",
			Program:              "Program Operacyjny Infrastruktura i Środowisko",
			Priority:             "V",
			Measure:              "5.1",
			Type:                 "infrastruktura",
			TypeOfIntervention:   "kolej",
			TotalProjectValuePLN: "1500000.50",
			UnionCoFinancingRate: "85",
			EuCoFinancingPLN:     "1275000.43",
			EuroExchangeRate:     "4.35",
			ProjectLocation:      "MAZOWIECKIE, ŁÓDZKIE",
			ProjectStartDate:     project.NewDate(2021, time.March, 1),
			ProjectEndDate:       project.NewDate(2023, time.June, 30),
			Category:             "Transport",
		},
		{
			ID:                   "p2",
			ProjectName:          `Centrum badań "Nowa Energia"`,
			ProjectSummary:       "Budowa laboratorium, etap II",
			ContractNumber:       "POIR.01.01.01-00-0002/21",
			BeneficiaryName:      "Politechnika Śląska",
			Fund:                 "EFRR",
			SpecificObjective:    "Wzmocnienie badań naukowych",
			Program:              "Program Operacyjny Inteligentny Rozwój",
			Priority:             "I",
			Measure:              "1.1",
			Type:                 "badania",
			TypeOfIntervention:   "B+R",
			TotalProjectValuePLN: "750000",
			UnionCoFinancingRate: "80",
			EuCoFinancingPLN:     "600000",
			EuroExchangeRate:     "4.40",
			ProjectLocation:      "ŚLĄSKIE",
			ProjectStartDate:     project.NewDate(2022, time.January, 10),
			ProjectEndDate:       project.NewDate(2024, time.December, 31),
			Category:             "Energetyka",
		},
	}
}

func encode(t *testing.T, records []project.Project, format export.Format) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, records, format))
	return buf.Bytes()
}

func TestEncodeCSVGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "projects_csv", encode(t, fixtureRecords(), export.FormatCSV))
}

func TestEncodeTXTGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "projects_txt", encode(t, fixtureRecords(), export.FormatTXT))
}

func TestEncodeXMLGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "projects_xml", encode(t, fixtureRecords(), export.FormatXML))
}

// A structured export decoded and re-encoded must reproduce the record
// set exactly, field order included.
func TestEncodeJSONRoundTrip(t *testing.T) {
	records := fixtureRecords()
	first := encode(t, records, export.FormatJSON)

	var decoded []project.Project
	require.NoError(t, json.Unmarshal(first, &decoded))
	require.Equal(t, records, decoded)

	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, decoded, export.FormatJSON))
	require.Equal(t, first, buf.Bytes())
}

func TestEncodeEmptyInputAsymmetry(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, export.Encode(&buf, nil, export.FormatCSV), export.ErrNoData)
	require.ErrorIs(t, export.Encode(&buf, nil, export.FormatTXT), export.ErrNoData)

	require.Equal(t, "[]\n", string(encode(t, nil, export.FormatJSON)))
	require.Equal(t, "<projects></projects>", string(encode(t, nil, export.FormatXML)))
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, export.Encode(&buf, fixtureRecords(), export.Format("yaml")))
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "xml", "csv", "txt"} {
		f, err := export.ParseFormat(name)
		require.NoError(t, err)
		require.Equal(t, "projects."+name, f.Filename())
	}
	_, err := export.ParseFormat("pdf")
	require.Error(t, err)
}
