package dialog

import "testing"

func TestValueExtractsTypedPayload(t *testing.T) {
	r := &Reply{id: "save", value: "document.txt"}

	if !r.HasReply() || !r.HasReplyFrom("save") {
		t.Fatal("fresh reply reports no payload")
	}
	if r.HasReplyFrom("other") {
		t.Error("payload attributed to the wrong entry")
	}

	v, ok := Value[string](r)
	if !ok || v != "document.txt" {
		t.Fatalf("Value[string] = %q, %v", v, ok)
	}

	// A successful extraction consumes the payload.
	if r.HasReply() {
		t.Error("payload still readable after extraction")
	}
	if _, ok := Value[string](r); ok {
		t.Error("payload extracted twice")
	}
	if !r.From("save") {
		t.Error("identity lost after extraction")
	}
}

func TestValueTypeMismatchLeavesReplyIntact(t *testing.T) {
	r := &Reply{id: "pick", value: 42}

	if _, ok := Value[string](r); ok {
		t.Fatal("int payload extracted as string")
	}
	if !r.HasReply() {
		t.Fatal("failed extraction consumed the payload")
	}

	// The caller can retry with the right type.
	v, ok := Value[int](r)
	if !ok || v != 42 {
		t.Fatalf("Value[int] = %d, %v", v, ok)
	}
}

func TestValueOnEmptyReply(t *testing.T) {
	if _, ok := Value[int](nil); ok {
		t.Error("nil reply yielded a value")
	}

	r := &Reply{id: "closed"}
	if r.HasReply() {
		t.Error("payload-less reply reports a payload")
	}
	if _, ok := Value[int](r); ok {
		t.Error("payload-less reply yielded a value")
	}
}
