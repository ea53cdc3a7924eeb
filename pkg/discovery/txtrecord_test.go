package discovery_test

import (
	"testing"

	"github.com/matterscan/matterscan-go/pkg/discovery"
)

func TestStringsToTXTRecords(t *testing.T) {
	txt := discovery.StringsToTXTRecords([]string{"D=3840", "VP=65521+32769", "flag", "CM=1=2"})

	if txt["D"] != "3840" {
		t.Errorf("D = %q", txt["D"])
	}
	if txt["VP"] != "65521+32769" {
		t.Errorf("VP = %q", txt["VP"])
	}
	if v, ok := txt["flag"]; !ok || v != "" {
		t.Errorf("flag = %q, %v", v, ok)
	}
	if txt["CM"] != "1=2" {
		t.Errorf("CM = %q, want value split on first '='", txt["CM"])
	}
}

func TestDecodeCommissionableTXT(t *testing.T) {
	tests := []struct {
		name string
		txt  discovery.TXTRecordMap
		want discovery.CommissionableTXT
	}{
		{
			name: "complete",
			txt:  discovery.TXTRecordMap{"D": "3840", "VP": "65521+32769"},
			want: discovery.CommissionableTXT{
				Discriminator: 3840, VendorID: 65521, ProductID: 32769,
				HasDiscriminator: true, HasVendorProduct: true,
			},
		},
		{
			name: "vendor only",
			txt:  discovery.TXTRecordMap{"VP": "4660"},
			want: discovery.CommissionableTXT{VendorID: 4660, HasVendorProduct: true},
		},
		{
			name: "empty product part",
			txt:  discovery.TXTRecordMap{"VP": "4660+"},
			want: discovery.CommissionableTXT{VendorID: 4660, HasVendorProduct: true},
		},
		{
			name: "too many VP parts",
			txt:  discovery.TXTRecordMap{"D": "12", "VP": "1+2+3"},
			want: discovery.CommissionableTXT{Discriminator: 12, HasDiscriminator: true},
		},
		{
			name: "non-numeric VP",
			txt:  discovery.TXTRecordMap{"VP": "abc+1"},
			want: discovery.CommissionableTXT{},
		},
		{
			name: "discriminator too long",
			txt:  discovery.TXTRecordMap{"D": "12345"},
			want: discovery.CommissionableTXT{},
		},
		{
			name: "discriminator at 12-bit max",
			txt:  discovery.TXTRecordMap{"D": "4095"},
			want: discovery.CommissionableTXT{Discriminator: 4095, HasDiscriminator: true},
		},
		{
			name: "discriminator above 12 bits",
			txt:  discovery.TXTRecordMap{"D": "9999", "VP": "1+2"},
			want: discovery.CommissionableTXT{VendorID: 1, ProductID: 2, HasVendorProduct: true},
		},
		{
			name: "discriminator not digits",
			txt:  discovery.TXTRecordMap{"D": "12a"},
			want: discovery.CommissionableTXT{},
		},
		{
			name: "discriminator signed",
			txt:  discovery.TXTRecordMap{"D": "-1"},
			want: discovery.CommissionableTXT{},
		},
		{
			name: "nothing",
			txt:  discovery.TXTRecordMap{},
			want: discovery.CommissionableTXT{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := discovery.DecodeCommissionableTXT(tt.txt)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
