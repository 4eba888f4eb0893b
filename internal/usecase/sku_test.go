package usecase

import (
	"testing"

	"github.com/tanneryrow/backend/internal/domain"
)

func TestGenerateSKU(t *testing.T) {
	tests := []struct {
		name string
		desc domain.Descriptor
		want string
	}{
		{
			name: "full hide with every component",
			desc: domain.Descriptor{Brand: "Horween", Tannage: "Dublin", Color: "Black", Weight: "3-4", ProductType: domain.ProductFullHide},
			want: "HOR-DUB-BLK-34",
		},
		{
			name: "panel carries a type code",
			desc: domain.Descriptor{Brand: "Horween", Tannage: "Chromexcel", Color: "Natural", Weight: "4-5", ProductType: domain.ProductPanel},
			want: "HOR-PNL-CHX-NAT-45",
		},
		{
			name: "abbreviation shares the full name's code",
			desc: domain.Descriptor{Tannage: "Chrxl", ProductType: domain.ProductFullHide},
			want: "CHX",
		},
		{
			name: "uncoded components abbreviate to three letters",
			desc: domain.Descriptor{Tannage: "Krypto", Color: "Mojito", ProductType: domain.ProductFullHide},
			want: "KRY-MOJ",
		},
		{
			name: "decimal weights lose their punctuation",
			desc: domain.Descriptor{Tannage: "Buttero", Weight: "1.2-1.4", ProductType: domain.ProductFullHide},
			want: "BUT-1214",
		},
		{
			name: "nothing parsed",
			desc: domain.Descriptor{ProductType: domain.ProductFullHide},
			want: "UNKNOWN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateSKU(tt.desc); got != tt.want {
				t.Errorf("GenerateSKU = %q, want %q", got, tt.want)
			}
		})
	}
}
