// internal/server/params_test.go
package server

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseApplyParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  ApplyParams
	}{
		{
			name:  "all recognized parameters",
			query: "flight=VN123&nationality=US&purpose=business&entryPort=SGN&speed=4-hour",
			want: ApplyParams{
				Flight:      "VN123",
				Nationality: "US",
				Purpose:     "business",
				EntryPort:   "SGN",
				Speed:       "4-hour",
			},
		},
		{
			name:  "unknown purpose defaults to tourist",
			query: "purpose=pilgrimage",
			want:  ApplyParams{Purpose: "tourist", Speed: "30-min"},
		},
		{
			name:  "unknown speed defaults to 30-min",
			query: "speed=instant",
			want:  ApplyParams{Purpose: "tourist", Speed: "30-min"},
		},
		{
			name:  "empty query gets both defaults",
			query: "",
			want:  ApplyParams{Purpose: "tourist", Speed: "30-min"},
		},
		{
			name:  "visiting purpose preserved",
			query: "purpose=visiting&speed=weekend",
			want:  ApplyParams{Purpose: "visiting", Speed: "weekend"},
		},
		{
			name:  "unrecognized parameters ignored",
			query: "flight=VN9&utm_source=google&gclid=abc",
			want:  ApplyParams{Flight: "VN9", Purpose: "tourist", Speed: "30-min"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ParseApplyParams(values))
		})
	}
}
