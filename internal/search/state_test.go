package search

import (
	"errors"
	"testing"
	"time"
)

func TestStateCodecRoundTrip(t *testing.T) {
	codec := NewStateCodec("test-secret", 10*time.Minute)
	f := Filter{Region: "Europe", City: "Rome", FilterBar: FilterBar{Theme: "Culture & History"}}

	token, err := codec.Encode(f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Region != "Europe" || got.City != "Rome" || got.Theme != "Culture & History" {
		t.Errorf("got %+v", got)
	}
}

func TestStateCodecRejects(t *testing.T) {
	codec := NewStateCodec("test-secret", 10*time.Minute)
	valid, _ := codec.Encode(Filter{Region: "Asia", City: "Seoul"})

	other := NewStateCodec("another-secret", 10*time.Minute)
	if _, err := other.Decode(valid); !errors.Is(err, ErrInvalidState) {
		t.Errorf("wrong secret: err = %v", err)
	}

	expired := NewStateCodec("test-secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, _ := expired.Encode(Filter{Region: "Asia", City: "Seoul"})
	if _, err := codec.Decode(old); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expired: err = %v", err)
	}

	noCity, _ := codec.Encode(Filter{Region: "Asia"})
	if _, err := codec.Decode(noCity); !errors.Is(err, ErrInvalidState) {
		t.Errorf("missing city: err = %v", err)
	}

	if _, err := codec.Decode("garbage"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("garbage: err = %v", err)
	}
}
