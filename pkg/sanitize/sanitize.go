// pkg/sanitize: dışa aktarım dosya adları için temizlik yardımcıları.
package sanitize

import "strings"

// FileName verilen metni dosya adında güvenle kullanılabilir hale getirir:
// harf ve rakamlar korunur, boşluklar alt çizgiye çevrilir, gerisi atılır.
func FileName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteRune('_')
		}
	}
	return b.String()
}
