package coursetime

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Slot
	}{
		{
			name: "morning range",
			raw:  "الأحد: 9:00 ص - 9:50 ص",
			want: []Slot{{Day: 0, Start: "09:00:00", End: "09:50:00"}},
		},
		{
			name: "evening end time",
			raw:  "الإثنين: 12:00 م - 1:00 م",
			want: []Slot{{Day: 1, Start: "12:00:00", End: "13:00:00"}},
		},
		{
			name: "multiple days share the range",
			raw:  "الأحد الثلاثاء: 11:00 ص - 11:50 ص",
			want: []Slot{
				{Day: 0, Start: "11:00:00", End: "11:50:00"},
				{Day: 2, Start: "11:00:00", End: "11:50:00"},
			},
		},
		{
			name: "multiple lines in entry order",
			raw:  "الأحد: 8:00 ص - 8:50 ص\nالخميس: 2:00 م - 3:15 م",
			want: []Slot{
				{Day: 0, Start: "08:00:00", End: "08:50:00"},
				{Day: 4, Start: "14:00:00", End: "15:15:00"},
			},
		},
		{
			name: "midnight is twelve morning",
			raw:  "السبت: 12:00 ص - 12:50 ص",
			want: []Slot{{Day: 6, Start: "00:00:00", End: "00:50:00"}},
		},
		{
			name: "unscheduled sentinel",
			raw:  "غير محدد",
			want: nil,
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "malformed line dropped",
			raw:  "not a time at all",
			want: nil,
		},
		{
			name: "malformed line dropped but good line kept",
			raw:  "???\nالجمعة: 10:00 ص - 10:50 ص",
			want: []Slot{{Day: 5, Start: "10:00:00", End: "10:50:00"}},
		},
		{
			name: "unknown day token dropped",
			raw:  "Sunday الأربعاء: 10:00 ص - 10:50 ص",
			want: []Slot{{Day: 3, Start: "10:00:00", End: "10:50:00"}},
		},
		{
			name: "hamza-less monday spelling",
			raw:  "الاثنين: 9:00 ص - 9:50 ص",
			want: []Slot{{Day: 1, Start: "09:00:00", End: "09:50:00"}},
		},
		{
			name: "repeated slots are kept",
			raw:  "الأحد: 9:00 ص - 9:50 ص\nالأحد: 9:00 ص - 9:50 ص",
			want: []Slot{
				{Day: 0, Start: "09:00:00", End: "09:50:00"},
				{Day: 0, Start: "09:00:00", End: "09:50:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseIsIdempotent(t *testing.T) {
	raw := "الأحد الثلاثاء: 11:00 ص - 11:50 ص\nالخميس: 1:00 م - 2:15 م"
	first := Parse(raw)
	second := Parse(raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Parse disagreed: %v vs %v", first, second)
	}
}
