// pkg/queryparams: liste uçları için sayfalama parametreleri.
package queryparams

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListParams offset/limit tabanlı sayfalama parametrelerini tutar.
type ListParams struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

// Validate parametreleri güvenli aralıklara çeker.
func (p *ListParams) Validate() {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}
