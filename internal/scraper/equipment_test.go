package scraper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchEquipment(t *testing.T) {
	rq := require.New(t)

	html := `<html><body><div class="profile">
<div>Railgun M3</div>
<div>Railgun M3</div>
<div>Smoky M0</div>
<div>Isida</div>
<div>Wasp M2</div>
<div>Hornet</div>
</div></body></html>`

	eq := matchEquipment(mustParse(t, html))

	rq.Equal([]string{"Smoky M0", "Railgun M3", "Isida"}, eq.Turrets)
	rq.Equal([]string{"Wasp M2", "Hornet"}, eq.Hulls)
}

func TestMatchEquipmentTierForms(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "modifier letter form",
			html: "<div>Thunder M2</div>",
			want: []string{"Thunder M2"},
		},
		{
			name: "bare digits form",
			html: "<div>Thunder 3</div>",
			want: []string{"Thunder M3"},
		},
		{
			name: "name alone",
			html: "<div>Thunder</div>",
			want: []string{"Thunder"},
		},
		{
			name: "absent",
			html: "<div>no guns here</div>",
			want: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			eq := matchEquipment(mustParse(t, tc.html))
			rq.Equal(tc.want, eq.Turrets)
		})
	}
}
