package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		res  int
	}{
		{"nil nodes", nil, nil, 0},
		{"nil < non-nil", nil, FromNil(), -1},
		{"same scalar", FromFixPos(3), FromFixPos(3), 0},
		{"value order", FromFixPos(2), FromFixPos(3), -1},
		{"variant distinguishes same value", FromFixPos(1), FromInt32(1), -1},
		{"string payload", FromFixStr("a"), FromFixStr("b"), -1},
		{"bytes payload", FromBin8([]byte{1}), FromBin8([]byte{2}), -1},
		{"ext type", FromFixExt1(1, []byte{9}), FromFixExt1(2, []byte{9}), -1},
		{"array length", FromFixArray(), FromFixArray(FromNil()), -1},
		{"array content", FromFixArray(FromFixPos(1)), FromFixArray(FromFixPos(2)), -1},
		{"map equal",
			FromFixMap(Pair{Key: FromFixStr("k"), Value: FromFixPos(1)}),
			FromFixMap(Pair{Key: FromFixStr("k"), Value: FromFixPos(1)}), 0},
		{"map value differs",
			FromFixMap(Pair{Key: FromFixStr("k"), Value: FromFixPos(1)}),
			FromFixMap(Pair{Key: FromFixStr("k"), Value: FromFixPos(2)}), -1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Compare(test.a, test.b); got != test.res {
				t.Errorf("Compare = %d, want %d", got, test.res)
			}
			if got := Compare(test.b, test.a); got != -test.res {
				t.Errorf("reversed Compare = %d, want %d", got, -test.res)
			}
		})
	}
}

func TestClone(t *testing.T) {
	orig := FromFixMap(
		Pair{Key: FromFixStr("data"), Value: FromBin8([]byte{1, 2})},
		Pair{Key: FromFixStr("list"), Value: FromFixArray(FromFixPos(1))},
	)
	dup := orig.Clone()
	if !Equal(orig, dup) {
		t.Fatal("clone differs from original")
	}
	dup.Values[0].Bytes[0] = 9
	if Equal(orig, dup) {
		t.Error("clone shares byte payloads with original")
	}
}
