package validate

import (
	"math"
	"strings"
	"testing"

	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"
)

type place struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type point struct {
	Body      string  `json:"body" validate:"required"`
	Longitude float64 `json:"longitude" validate:"ecliptic"`
	Hour      float64 `validate:"gte=0,lt=24"`
}

func TestStruct_OK(t *testing.T) {
	if err := Struct(place{Latitude: 28.6, Longitude: 77.2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Struct(point{Body: "Moon", Longitude: 359.99, Hour: 23.9}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_FieldAndCode(t *testing.T) {
	cases := []struct {
		name      string
		in        any
		wantField string
		wantMsg   string
	}{
		{"latitude high", place{Latitude: 91}, "latitude", "latitude must be at most 90"},
		{"longitude low", place{Longitude: -180.5}, "longitude", "longitude must be at least -180"},
		{"ecliptic 360", point{Body: "Sun", Longitude: 360}, "longitude", "[0,360)"},
		{"ecliptic NaN", point{Body: "Sun", Longitude: math.NaN()}, "longitude", "[0,360)"},
		{"hour 24", point{Body: "Sun", Hour: 24}, "Hour", "Hour must be below 24"},
		{"required", point{}, "body", "body"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Struct(c.in)
			if !perr.IsCode(err, perr.ErrorCodeInvalidInput) {
				t.Fatalf("expected invalid input, got %v (%v)", perr.CodeOf(err), err)
			}
			e, _ := perr.As(err)
			if e.Field() != c.wantField {
				t.Fatalf("field = %q, want %q", e.Field(), c.wantField)
			}
			if !strings.Contains(err.Error(), c.wantMsg) {
				t.Fatalf("message %q does not contain %q", err.Error(), c.wantMsg)
			}
		})
	}
}

func TestStruct_NonStruct(t *testing.T) {
	err := Struct(42)
	if err == nil || perr.IsCode(err, perr.ErrorCodeInvalidInput) {
		t.Fatalf("expected internal error for non-struct, got %v", err)
	}
}

func TestFieldAndMessage_Foreign(t *testing.T) {
	if f, m := FieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil error should give empty pair")
	}
	f, m := FieldAndMessage(perr.InvalidInputf("x"))
	if f != "" || m != "x" {
		t.Fatalf("foreign error = (%q,%q)", f, m)
	}
}
