package srs

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRatingValidity(t *testing.T) {
	for _, r := range AllRatings() {
		if !r.IsValid() {
			t.Errorf("%v should be valid", r)
		}
	}
	for _, r := range []Rating{0, 5, -3} {
		if r.IsValid() {
			t.Errorf("Rating(%d) should be invalid", int(r))
		}
	}
}

func TestRatingOrdering(t *testing.T) {
	if !(Again < Hard && Hard < Good && Good < Easy) {
		t.Error("ratings must order Again < Hard < Good < Easy")
	}
}

func TestRatingJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Good)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"Good"` {
		t.Errorf("Marshal = %s, want \"Good\"", b)
	}
	var r Rating
	if err := json.Unmarshal(b, &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r != Good {
		t.Errorf("round trip = %v, want Good", r)
	}
}

func TestRatingUnmarshalInvalid(t *testing.T) {
	var r Rating
	err := json.Unmarshal([]byte(`"Meh"`), &r)
	if !errors.Is(err, ErrInvalidRating) {
		t.Errorf("err = %v, want ErrInvalidRating", err)
	}
	if _, err := json.Marshal(Rating(9)); err == nil {
		t.Error("marshaling an invalid rating should fail")
	}
}
