package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParamsValidate(t *testing.T) {
	cases := []struct {
		name string
		in   ListParams
		want ListParams
	}{
		{"varsayilanlar", ListParams{}, ListParams{Skip: 0, Limit: DefaultLimit}},
		{"negatif skip sifirlanir", ListParams{Skip: -5, Limit: 20}, ListParams{Skip: 0, Limit: 20}},
		{"limit tavani", ListParams{Skip: 10, Limit: 500}, ListParams{Skip: 10, Limit: MaxLimit}},
		{"gecerli degerler dokunulmaz", ListParams{Skip: 30, Limit: 25}, ListParams{Skip: 30, Limit: 25}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.in
			p.Validate()
			assert.Equal(t, tc.want, p)
		})
	}
}
