package httpapi

import "testing"

func TestVenueMapLink(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{name: "empty address", address: "", want: ""},
		{
			name:    "spaces escaped",
			address: "Av. Gral. Flores 4100, Montevideo",
			want:    "http://maps.google.com/maps?t=m&q=Av.+Gral.+Flores+4100%2C+Montevideo",
		},
		{
			name:    "plain word",
			address: "Durazno",
			want:    "http://maps.google.com/maps?t=m&q=Durazno",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := venueMapLink(tt.address); got != tt.want {
				t.Fatalf("venueMapLink(%q)=%q want=%q", tt.address, got, tt.want)
			}
		})
	}
}
