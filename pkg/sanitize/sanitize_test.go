package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Yaz Konseri", "Yaz_Konseri"},
		{"rezerve", "rezerve"},
		{"a-b_c d", "a_b_c_d"},
		{"Yılbaşı Gecesi 2026", "Ylba_Gecesi_2026"},
		{"../../etc/passwd", "etcpasswd"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FileName(tc.in), "girdi: %q", tc.in)
	}
}
