package render

import (
	"reflect"
	"testing"
)

func TestFromAttributes(t *testing.T) {
	o := FromAttributes(map[string]string{
		"cid":       "QH",
		"CardColor": "#FEFEFE",
		"norank":    "",
		"unknown":   "ignored",
	})

	if o.CID != "QH" {
		t.Errorf("CID = %q, want QH", o.CID)
	}
	if o.CardColor != "#FEFEFE" {
		t.Errorf("CardColor = %q, want #FEFEFE", o.CardColor)
	}
	if o.NoRank != "norank" || !truthy(o.NoRank) {
		t.Errorf("NoRank = %q, want bare attribute to be truthy", o.NoRank)
	}
}

func TestAttributesRoundTrip(t *testing.T) {
	for _, name := range AttributeNames {
		var o Options
		if o.field(name) == nil {
			t.Errorf("attribute %q has no field", name)
			continue
		}
		o.Set(map[string]string{name: "x"})
		if got := o.Get(name); got != "x" {
			t.Errorf("Get(%q) = %q, want x", name, got)
		}
	}
}

func TestMerge(t *testing.T) {
	base := Options{CardColor: "#eee", Opacity: "0.5", Suit: "hearts"}
	got := Options{Suit: "clubs"}.Merge(base)
	want := Options{CardColor: "#eee", Opacity: "0.5", Suit: "clubs"}
	if got != want {
		t.Errorf("Merge() = %+v, want %+v", got, want)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"0123", []string{"0", "1", "2", "3"}},
		{"#000,#f00", []string{"#000", "#f00"}},
		{"A", []string{"A"}},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := pick("012", 5); got != "" {
		t.Errorf("pick out of range = %q, want empty", got)
	}
	if got := perSuit("#abc", 3); got != "#abc" {
		t.Errorf("perSuit single value = %q, want #abc", got)
	}
	if got := perSuit("#1,#2", 3); got != "" {
		t.Errorf("perSuit missing index = %q, want empty", got)
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "norank", "yes"} {
		if !truthy(v) {
			t.Errorf("truthy(%q) = false", v)
		}
	}
	for _, v := range []string{"", "0", "false", "OFF"} {
		if truthy(v) {
			t.Errorf("truthy(%q) = true", v)
		}
	}
}
