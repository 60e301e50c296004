package transfer

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/nearby/internal/domain"
)

var sampleTasks = []domain.Task{
	{Name: "Buy milk", DueDate: "2024-05-02", Priority: domain.PriorityHigh, Location: domain.LocationSupermarket},
	{Name: "Essay", Description: "history, 2 pages", DueDate: "2024-05-01", Priority: domain.PriorityLow, Location: domain.LocationSchool},
}

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"json": FormatJSON,
		"YAML": FormatYAML,
		"yml":  FormatYAML,
		"csv":  FormatCSV,
		" pdf": FormatPDF,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("docx")
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestEncode_JSONUsesStorageKeys(t *testing.T) {
	data, err := Encode(sampleTasks[:1], FormatJSON, fixedNow)
	require.NoError(t, err)

	assert.JSONEq(t, `[{"name":"Buy milk","description":"","dueDate":"2024-05-02","priority":"high","location":"supermarket"}]`, string(data))
}

func TestEncode_EmptyJSONIsArray(t *testing.T) {
	data, err := Encode(nil, FormatJSON, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestEncode_YAMLRoundTrip(t *testing.T) {
	data, err := Encode(sampleTasks, FormatYAML, fixedNow)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, sampleTasks, got)
}

func TestEncode_CSV(t *testing.T) {
	data, err := Encode(sampleTasks, FormatCSV, fixedNow)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"1", "Essay", "history, 2 pages", "2024-05-01", "low", "school"}, records[2])
}

func TestEncode_PDF(t *testing.T) {
	data, err := Encode(sampleTasks, FormatPDF, fixedNow)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(sampleTasks, Format("xml"), fixedNow)
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []domain.Task
		wantErr bool
	}{
		{
			name:  "empty",
			input: "  \n",
			want:  []domain.Task{},
		},
		{
			name: "yaml sequence",
			input: `
- name: Laundry
  dueDate: "2024-06-01"
  priority: medium
  location: home
`,
			want: []domain.Task{{Name: "Laundry", DueDate: "2024-06-01", Priority: domain.PriorityMedium, Location: domain.LocationHome}},
		},
		{
			name: "tasks mapping",
			input: `tasks:
  - name: Read
    location: school
`,
			want: []domain.Task{{Name: "Read", Location: domain.LocationSchool}},
		},
		{
			name:  "json array",
			input: `[{"name":"Eggs","dueDate":"2024-06-02","priority":"low","location":"supermarket"}]`,
			want:  []domain.Task{{Name: "Eggs", DueDate: "2024-06-02", Priority: domain.PriorityLow, Location: domain.LocationSupermarket}},
		},
		{
			name:    "scalar",
			input:   "hello",
			wantErr: true,
		},
		{
			name:    "malformed",
			input:   "- name: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodec(t *testing.T) {
	var c Codec

	data, err := c.Encode(sampleTasks, "yml", fixedNow)
	require.NoError(t, err)

	got, err := c.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, sampleTasks, got)

	_, err = c.Encode(sampleTasks, "docx", fixedNow)
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}
