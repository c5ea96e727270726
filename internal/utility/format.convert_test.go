// Package utility - Test chuyển đổi giữa ObjectID và chuỗi hex.
package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestObjectIDStringRoundTrip(t *testing.T) {
	id := primitive.NewObjectID()
	s := ObjectID2String(id)
	if len(s) != 24 {
		t.Errorf("chuỗi ObjectID phải dài 24 ký tự hex, got: %q", s)
	}
	if got := String2ObjectID(s); got != id {
		t.Errorf("round-trip phải trả về ObjectID ban đầu, got: %v", got)
	}
}

func TestString2ObjectID_Invalid(t *testing.T) {
	if got := String2ObjectID("not-a-hex-id"); got != primitive.NilObjectID {
		t.Errorf("chuỗi không hợp lệ phải trả về NilObjectID, got: %v", got)
	}
}
