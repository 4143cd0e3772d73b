package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInput_YAMLDecoding(t *testing.T) {
	content := `
cv:
  name: Jane Doe
  sections:
    summary:
      - Engineer.
    experience:
      - company: Acme
        position: Engineer
        start_date: 2020
    awards:
      - bullet: Employee of the year
design:
  theme: classic
`
	var in Input
	require.NoError(t, yaml.Unmarshal([]byte(content), &in))

	assert.Equal(t, "Jane Doe", in.CV.Name)
	assert.Equal(t, []string{"Engineer."}, in.CV.Sections.Summary)
	require.Len(t, in.CV.Sections.Experience, 1)
	assert.Equal(t, "2020", in.CV.Sections.Experience[0].StartDate)
	assert.Len(t, in.CV.Sections.Other["awards"], 1)
	assert.NotContains(t, in.CV.Sections.Other, "experience")
	assert.True(t, in.HasDesign())
}

func TestInput_HasDesign(t *testing.T) {
	var nilInput *Input
	assert.False(t, nilInput.HasDesign())
	assert.False(t, (&Input{}).HasDesign())
	assert.True(t, (&Input{Design: map[string]any{}}).HasDesign())
}

func TestInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		input     Input
		wantErr   bool
		wantField string
	}{
		{
			name: "valid",
			input: Input{CV: CV{
				Email:   "jane@example.com",
				Website: "https://example.com",
				Sections: Sections{
					Experience: []ExperienceEntry{{Company: "Acme", Position: "Engineer", StartDate: "2020-01", EndDate: "present"}},
					Education:  []EducationEntry{{Institution: "Uni", Area: "CS", StartDate: "2014", EndDate: "2018-06-30"}},
				},
			}},
		},
		{
			name:  "empty optional fields",
			input: Input{},
		},
		{
			name:      "bad email",
			input:     Input{CV: CV{Email: "nope"}},
			wantErr:   true,
			wantField: "email",
		},
		{
			name:      "bad website",
			input:     Input{CV: CV{Website: "not a url"}},
			wantErr:   true,
			wantField: "website",
		},
		{
			name: "bad start date",
			input: Input{CV: CV{Sections: Sections{
				Experience: []ExperienceEntry{{Company: "Acme", Position: "Engineer", StartDate: "Jan 2020"}},
			}}},
			wantErr:   true,
			wantField: "start_date",
		},
		{
			name: "present is not a start date",
			input: Input{CV: CV{Sections: Sections{
				Education: []EducationEntry{{Institution: "Uni", Area: "CS", StartDate: "present"}},
			}}},
			wantErr:   true,
			wantField: "start_date",
		},
		{
			name: "social network missing username",
			input: Input{CV: CV{
				SocialNetworks: []SocialNetwork{{Network: "GitHub"}},
			}},
			wantErr:   true,
			wantField: "username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var fieldErrs validator.ValidationErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field())
		})
	}
}
