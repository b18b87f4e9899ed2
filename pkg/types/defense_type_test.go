package types

import "testing"

func TestParseDefenseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DefenseKind
		wantErr bool
	}{
		{name: "加农炮", input: "cannon", want: DefenseCannon},
		{name: "箭塔", input: "archerTower", want: DefenseArcherTower},
		{name: "未知类型", input: "catapult", want: DefenseUnknown, wantErr: true},
		{name: "空字符串", input: "", want: DefenseUnknown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDefenseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDefenseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDefenseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefenseKindStringRoundTrip(t *testing.T) {
	for _, k := range DefenseKinds {
		parsed, err := ParseDefenseKind(k.String())
		if err != nil {
			t.Fatalf("kind %d: unexpected error %v", k, err)
		}
		if parsed != k {
			t.Errorf("Expected %v, got %v", k, parsed)
		}
	}
}
