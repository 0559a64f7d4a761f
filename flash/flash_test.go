package flash

import "testing"

func TestBoard_DismissOnlyMatchingSeq(t *testing.T) {
	var b Board
	b.Error("first")
	_, seq := b.Current()
	b.Success("second")

	b.Dismiss(seq)
	msg, _ := b.Current()
	if msg.Text != "second" || msg.Kind != Success {
		t.Fatalf("stale dismiss cleared newer message: %+v", msg)
	}

	_, seq = b.Current()
	b.Dismiss(seq)
	if msg, _ := b.Current(); !msg.Empty() {
		t.Fatalf("expected empty message, got %+v", msg)
	}
}
