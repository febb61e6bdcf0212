package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	input := strings.Join([]string{
		`publicationDate,Headline,name,author,url,coverageLevel,tags,location`,
		`2024-03-15,Contaminación del río,El Informador,Ana García,https://example.com/a,local,Río,El Salto`,
		`2024-03-16,Basurero clausurado,Milenio,Luis Pérez,https://example.com/b,nacional,Basureros,Juanacatlán`,
	}, "\n")

	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{
		PublicationDate: "2024-03-15",
		Headline:        "Contaminación del río",
		SourceName:      "El Informador",
		Author:          "Ana García",
		URL:             "https://example.com/a",
		CoverageLevel:   "local",
		TagLabel:        "Río",
		LocationLabel:   "El Salto",
	}, rows[0])
	assert.Equal(t, "Basureros", rows[1].TagLabel)
}

func TestReadRowsSanitizesHeaders(t *testing.T) {
	input := strings.Join([]string{
		`"publication Date!",Head-line,url`,
		`2024-03-15,Una nota,https://example.com/a`,
	}, "\n")

	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// "publication Date!" sanitizes to publicationDate; "Head-line" sanitizes
	// to Headline.
	assert.Equal(t, "2024-03-15", rows[0].PublicationDate)
	assert.Equal(t, "Una nota", rows[0].Headline)
	assert.Equal(t, "https://example.com/a", rows[0].URL)
}

func TestReadRowsIgnoresUnknownColumns(t *testing.T) {
	input := strings.Join([]string{
		`url,notes,Headline`,
		`https://example.com/a,scratch,Una nota`,
	}, "\n")

	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Una nota", rows[0].Headline)
}

func TestReadRowsEmptyCellsStayEmpty(t *testing.T) {
	input := strings.Join([]string{
		`publicationDate,Headline,author`,
		`2024-03-15,,Ana García`,
	}, "\n")

	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Headline)
}

func TestReadRowsEmptyInput(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSanitizeHeader(t *testing.T) {
	assert.Equal(t, "publicationDate", sanitizeHeader("publication Date!"))
	assert.Equal(t, "tags", sanitizeHeader(" tags "))
	assert.Equal(t, "coverage_level", sanitizeHeader("coverage_level"))
}
